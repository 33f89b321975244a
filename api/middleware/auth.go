package middleware

import (
	"context"
	"net/http"
	"strings"

	"squadup/pkg/messages"
	"squadup/pkg/session"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// SessionReader is the session lookup surface used by the middleware.
type SessionReader interface {
	Get(ctx context.Context, token string) (*session.Session, error)
}

// RequireSession rejects requests without a valid bearer token and attaches
// the resolved session to the request context.
func RequireSession(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": messages.Unauthorized})
			return
		}

		sess, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": messages.Unauthorized})
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session attached by RequireSession.
func CurrentSession(c *gin.Context) *session.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}

	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
