package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"squadup/pkg/config"
	"squadup/pkg/messages"
	"strings"
	"time"
)

const defaultBaseURL = "https://discord.com/api/v10"

// Channel permission values used when scoping a private channel.
// denyViewChannel hides the channel from the rest of the community, while
// allowParticipant grants view, send and read-history to the two members.
const (
	denyViewChannel  = "1024"
	allowParticipant = "68608"
)

// ErrNotConfigured is returned when the bot credentials are missing.
var ErrNotConfigured = errors.New(messages.BotNotConfigured)

// APIError carries the upstream status and body of a failed Discord call.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("discord API returned status code %d: %s", e.StatusCode, e.Body)
}

// Channel is the subset of a Discord channel we consume.
type Channel struct {
	ID string `json:"id"`
}

// AuthedUser is the identity returned by the /users/@me endpoint.
type AuthedUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Avatar     string `json:"avatar"`
}

// DisplayName returns the name shown on profiles.
func (u *AuthedUser) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// AvatarURL returns the CDN URL of the user avatar, or empty when unset.
func (u *AuthedUser) AvatarURL() string {
	if u.Avatar == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", u.ID, u.Avatar)
}

// API is the Discord surface consumed by the services.
type API interface {
	CreatePrivateChannel(ctx context.Context, name string, memberIDs ...string) (*Channel, error)
	CreateDM(ctx context.Context, recipientID string) (*Channel, error)
	CreateMessage(ctx context.Context, channelID string, content string) error
	ExchangeCode(ctx context.Context, code string) (string, error)
	CurrentUser(ctx context.Context, accessToken string) (*AuthedUser, error)
	ChannelURL(channelID string) string
}

// Client is the REST client authenticated with the bot credential.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	botToken     string
	guildID      string
	clientID     string
	clientSecret string
	redirectURL  string
}

// NewClient creates the Discord client from the loaded configuration.
func NewClient() *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		baseURL:      defaultBaseURL,
		botToken:     config.Discord.BotToken,
		guildID:      config.Discord.GuildID,
		clientID:     config.Discord.ClientID,
		clientSecret: config.Discord.ClientSecret,
		redirectURL:  config.Discord.RedirectURL,
	}
}

type permissionOverwrite struct {
	ID    string `json:"id"`
	Type  int    `json:"type"`
	Allow string `json:"allow,omitempty"`
	Deny  string `json:"deny,omitempty"`
}

type createChannelPayload struct {
	Name                 string                `json:"name"`
	Type                 int                   `json:"type"`
	PermissionOverwrites []permissionOverwrite `json:"permission_overwrites"`
}

// CreatePrivateChannel creates a guild text channel readable only by the
// given members, hidden from the community role.
func (c *Client) CreatePrivateChannel(ctx context.Context, name string, memberIDs ...string) (*Channel, error) {
	if c.botToken == "" || c.guildID == "" {
		return nil, ErrNotConfigured
	}

	overwrites := []permissionOverwrite{
		{ID: c.guildID, Type: 0, Deny: denyViewChannel},
	}
	for _, memberID := range memberIDs {
		overwrites = append(overwrites, permissionOverwrite{ID: memberID, Type: 1, Allow: allowParticipant})
	}

	payload := createChannelPayload{
		Name:                 name,
		Type:                 0,
		PermissionOverwrites: overwrites,
	}

	var channel Channel
	path := fmt.Sprintf("/guilds/%s/channels", c.guildID)
	if err := c.doBot(ctx, http.MethodPost, path, payload, &channel); err != nil {
		return nil, err
	}

	return &channel, nil
}

// CreateDM opens a direct message channel with the given user.
// Fails when the recipient disabled direct messages, which is expected.
func (c *Client) CreateDM(ctx context.Context, recipientID string) (*Channel, error) {
	if c.botToken == "" {
		return nil, ErrNotConfigured
	}

	payload := map[string]string{"recipient_id": recipientID}

	var channel Channel
	if err := c.doBot(ctx, http.MethodPost, "/users/@me/channels", payload, &channel); err != nil {
		return nil, err
	}

	return &channel, nil
}

// CreateMessage posts a message into the given channel.
func (c *Client) CreateMessage(ctx context.Context, channelID string, content string) error {
	if c.botToken == "" {
		return ErrNotConfigured
	}

	payload := map[string]string{"content": content}
	path := fmt.Sprintf("/channels/%s/messages", channelID)

	return c.doBot(ctx, http.MethodPost, path, payload, nil)
}

// ChannelURL builds the user facing URL of a guild channel.
func (c *Client) ChannelURL(channelID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s", c.guildID, channelID)
}

// ExchangeCode trades an OAuth authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", ErrNotConfigured
	}

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", newAPIError(resp)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}

	return token.AccessToken, nil
}

// CurrentUser fetches the identity behind an OAuth access token.
func (c *Client) CurrentUser(ctx context.Context, accessToken string) (*AuthedUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/@me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp)
	}

	var user AuthedUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user response: %w", err)
	}

	return &user, nil
}

// doBot runs a bot authenticated request and decodes the response into out.
func (c *Client) doBot(ctx context.Context, method string, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bot "+c.botToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse API response: %w", err)
	}

	return nil
}

func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
