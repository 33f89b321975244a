package handlers

import (
	"net/http"

	"squadup/api/middleware"
	authservice "squadup/api/services/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler is the handler for the authentication endpoints.
type AuthHandler struct {
	authService *authservice.AuthService
}

type AuthHandlerDependencies struct {
	AuthService *authservice.AuthService
}

// NewAuthHandler creates a new instance of the auth handler.
func NewAuthHandler(deps *AuthHandlerDependencies) *AuthHandler {
	return &AuthHandler{
		authService: deps.AuthService,
	}
}

type loginPayload struct {
	Code string `json:"code"`
}

// Login handles the OAuth code exchange and session creation.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), payload.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

// Logout revokes the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.BearerToken(c)

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
