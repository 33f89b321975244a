package handlers

import (
	"net/http"

	"squadup/api/middleware"
	profileservice "squadup/api/services/profile"

	"github.com/gin-gonic/gin"
)

// ProfileHandler is the handler for the profile endpoints.
type ProfileHandler struct {
	profileService *profileservice.ProfileService
}

type ProfileHandlerDependencies struct {
	ProfileService *profileservice.ProfileService
}

// NewProfileHandler creates a new instance of the profile handler.
func NewProfileHandler(deps *ProfileHandlerDependencies) *ProfileHandler {
	return &ProfileHandler{
		profileService: deps.ProfileService,
	}
}

// GetProfile returns the session user's stored profile.
// An empty object signals a profile that was never saved.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	user, err := h.profileService.GetProfile(c.Request.Context(), sess.DiscordID)
	if err != nil {
		respondError(c, err)
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, user)
}

// SaveProfile upserts the session user's gaming preferences.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var payload profileservice.ProfileInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profileService.SaveProfile(c.Request.Context(), sess, &payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetPublicProfile returns the public view of any user, no session required.
func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	userID := c.Query("userId")

	profile, err := h.profileService.GetPublicProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
