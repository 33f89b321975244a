package handlers

import (
	"net/http"

	"squadup/api/filters"
	"squadup/api/middleware"
	teammateservice "squadup/api/services/teammate"

	"github.com/gin-gonic/gin"
)

// TeammateHandler is the handler for the teammate search endpoints.
type TeammateHandler struct {
	teammateService *teammateservice.TeammateService
}

type TeammateHandlerDependencies struct {
	TeammateService *teammateservice.TeammateService
}

// NewTeammateHandler creates a new instance of the teammate handler.
func NewTeammateHandler(deps *TeammateHandlerDependencies) *TeammateHandler {
	return &TeammateHandler{
		teammateService: deps.TeammateService,
	}
}

// GetTeammates handles requests for teammate candidate search.
func (h *TeammateHandler) GetTeammates(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var qp filters.TeammateSearchParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.teammateService.Search(c.Request.Context(), sess.DiscordID, qp)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetPastTeammates handles requests for the past teammates listing.
func (h *TeammateHandler) GetPastTeammates(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	result, err := h.teammateService.PastTeammates(c.Request.Context(), sess.DiscordID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
