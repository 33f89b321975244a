package authservice

import (
	"context"
	"errors"
	"fmt"
	userrepo "squadup/api/repositories/user"
	"squadup/pkg/apperrors"
	"squadup/pkg/database/models"
	"squadup/pkg/discord"
	"squadup/pkg/messages"
	"squadup/pkg/session"

	"gorm.io/gorm"
)

// SessionStore is the session persistence surface used by the auth flow.
type SessionStore interface {
	Create(ctx context.Context, sess *session.Session) (string, error)
	Delete(ctx context.Context, token string) error
}

// AuthService handles the OAuth code exchange and the session lifecycle.
type AuthService struct {
	db       *gorm.DB
	discord  discord.API
	sessions SessionStore

	UserRepository userrepo.UserRepository
}

// AuthServiceDeps is the dependency list for the auth service.
type AuthServiceDeps struct {
	DB       *gorm.DB
	Discord  discord.API
	Sessions SessionStore
}

// NewAuthService creates a service for handling authentication.
func NewAuthService(deps *AuthServiceDeps) *AuthService {
	return &AuthService{
		db:             deps.DB,
		discord:        deps.Discord,
		sessions:       deps.Sessions,
		UserRepository: userrepo.NewUserRepository(deps.DB),
	}
}

// LoginResult carries the session token and the upserted user.
type LoginResult struct {
	Token string
	User  *models.User
}

// Login trades the OAuth authorization code for an identity, upserts the
// matching user and opens a session. The identity fields refresh on every
// login, the gameplay preferences are never touched here.
func (as *AuthService) Login(ctx context.Context, code string) (*LoginResult, error) {
	if code == "" {
		return nil, apperrors.New(apperrors.CodeInvalid, messages.MissingAuthCode)
	}

	accessToken, err := as.discord.ExchangeCode(ctx, code)
	if err != nil {
		return nil, mapDiscordError(err)
	}

	identity, err := as.discord.CurrentUser(ctx, accessToken)
	if err != nil {
		return nil, mapDiscordError(err)
	}

	name := identity.DisplayName()
	if name == "" {
		name = "Unknown"
	}

	user, err := as.UserRepository.GetByDiscordID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &models.User{
			DiscordID: identity.ID,
			Name:      name,
			Image:     optional(identity.AvatarURL()),
		}
		if err := as.UserRepository.Create(ctx, user); err != nil {
			return nil, err
		}
	} else {
		user.Name = name
		user.Image = optional(identity.AvatarURL())
		if err := as.UserRepository.Save(ctx, user); err != nil {
			return nil, err
		}
	}

	sess := &session.Session{
		DiscordID: user.DiscordID,
		Name:      user.Name,
	}
	if user.Image != nil {
		sess.Image = *user.Image
	}

	token, err := as.sessions.Create(ctx, sess)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

// Logout revokes the session behind the token. Unknown tokens are a no-op.
func (as *AuthService) Logout(ctx context.Context, token string) error {
	return as.sessions.Delete(ctx, token)
}

// mapDiscordError translates an identity provider failure into the error taxonomy.
func mapDiscordError(err error) error {
	if errors.Is(err, discord.ErrNotConfigured) {
		return apperrors.Wrap(err, apperrors.CodeMisconfigured, messages.BotNotConfigured)
	}

	var apiErr *discord.APIError
	if errors.As(err, &apiErr) {
		return apperrors.Wrap(err, apperrors.CodeUnauthorized, fmt.Sprintf("discord auth error: %s", apiErr.Body))
	}

	return apperrors.Wrap(err, apperrors.CodeUpstream, err.Error())
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
