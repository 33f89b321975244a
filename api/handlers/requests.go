package handlers

import (
	"net/http"

	"squadup/api/middleware"
	requestservice "squadup/api/services/request"

	"github.com/gin-gonic/gin"
)

// RequestHandler is the handler for the teammate request endpoints.
type RequestHandler struct {
	requestService *requestservice.RequestService
}

type RequestHandlerDependencies struct {
	RequestService *requestservice.RequestService
}

// NewRequestHandler creates a new instance of the request handler.
func NewRequestHandler(deps *RequestHandlerDependencies) *RequestHandler {
	return &RequestHandler{
		requestService: deps.RequestService,
	}
}

type sendRequestPayload struct {
	ToDiscordID string `json:"toDiscordId"`
}

// SendRequest records the teammate request and provisions the private channel.
func (h *RequestHandler) SendRequest(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var payload sendRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.requestService.Send(c.Request.Context(), sess, payload.ToDiscordID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"channelUrl": result.ChannelURL,
	})
}
