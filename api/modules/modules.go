package modules

import (
	"squadup/api/handlers"
	"squadup/api/middleware"
	requestservice "squadup/api/services/request"
	"squadup/pkg/discord"
	"squadup/pkg/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ModuleDependencies are the shared resources handed to every handler.
type ModuleDependencies struct {
	DB       *gorm.DB
	Discord  discord.API
	Logger   requestservice.Logger
	Sessions *session.Store
	BaseURL  string
}

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	AuthMiddleware  gin.HandlerFunc
	AuthHandler     *handlers.AuthHandler
	ProfileHandler  *handlers.ProfileHandler
	TeammateHandler *handlers.TeammateHandler
	RequestHandler  *handlers.RequestHandler
	RatingHandler   *handlers.RatingHandler
}

// NewModule creates a module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	return &Module{
		Router:          router,
		AuthMiddleware:  middleware.RequireSession(deps.Sessions),
		AuthHandler:     initializeAuthHandler(deps),
		ProfileHandler:  initializeProfileHandler(deps),
		TeammateHandler: initializeTeammateHandler(deps),
		RequestHandler:  initializeRequestHandler(deps),
		RatingHandler:   initializeRatingHandler(deps),
	}
}
