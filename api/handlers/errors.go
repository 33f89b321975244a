package handlers

import (
	"squadup/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError writes the error with its mapped status and public message.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.PublicMessage(err)})
}
