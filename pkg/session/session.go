package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "session:"
	sessionTTL = 7 * 24 * time.Hour
)

// ErrNotFound is returned when no session exists for a token.
var ErrNotFound = errors.New("session not found")

// Session is the identity snapshot kept for an authenticated user.
type Session struct {
	DiscordID string `json:"discordId"`
	Name      string `json:"name"`
	Image     string `json:"image"`
}

// RedisClient is the subset of the redis wrapper used by the store.
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Store keeps sessions in Redis under opaque random tokens.
type Store struct {
	redis RedisClient
}

// NewStore creates a session store over the given redis client.
func NewStore(redis RedisClient) *Store {
	return &Store{redis: redis}
}

// Create stores the session and returns its token.
func (s *Store) Create(ctx context.Context, sess *Session) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}

	if err := s.redis.Set(ctx, keyPrefix+token, string(payload), sessionTTL); err != nil {
		return "", fmt.Errorf("couldn't store the session: %w", err)
	}

	return token, nil
}

// Get returns the session for a token, or ErrNotFound.
func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	payload, err := s.redis.Get(ctx, keyPrefix+token)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

// Delete revokes the session for a token.
func (s *Store) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.redis.Del(ctx, keyPrefix+token)
}

// generateToken creates a random URL-safe token.
func generateToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}
