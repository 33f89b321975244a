package handlers

import (
	"net/http"

	"squadup/api/middleware"
	ratingservice "squadup/api/services/rating"

	"github.com/gin-gonic/gin"
)

// RatingHandler is the handler for the rating endpoints.
type RatingHandler struct {
	ratingService *ratingservice.RatingService
}

type RatingHandlerDependencies struct {
	RatingService *ratingservice.RatingService
}

// NewRatingHandler creates a new instance of the rating handler.
func NewRatingHandler(deps *RatingHandlerDependencies) *RatingHandler {
	return &RatingHandler{
		ratingService: deps.RatingService,
	}
}

// SubmitRating records a star rating from the session user.
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var payload ratingservice.RateInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ratingService.Rate(c.Request.Context(), sess.DiscordID, &payload); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
