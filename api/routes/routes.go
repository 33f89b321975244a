package routes

import (
	"squadup/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
	authed *gin.RouterGroup
}

// NewRouter groups the API under its version prefix and splits the routes
// requiring a session from the public ones.
func NewRouter(engine *gin.Engine, requireSession gin.HandlerFunc) *Router {
	api := engine.Group("/api/v1")

	return &Router{
		Engine: engine,
		api:    api,
		authed: api.Group("", requireSession),
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.AuthHandler:
			r.registerAuthHandler(handler)
		case *handlers.ProfileHandler:
			r.registerProfileHandler(handler)
		case *handlers.TeammateHandler:
			r.registerTeammateHandler(handler)
		case *handlers.RequestHandler:
			r.registerRequestHandler(handler)
		case *handlers.RatingHandler:
			r.registerRatingHandler(handler)
		}
	}
}

// Register the auth handler.
func (r *Router) registerAuthHandler(handler *handlers.AuthHandler) {
	r.api.POST("/auth/session", handler.Login)
	r.authed.DELETE("/auth/session", handler.Logout)
}

// Register the profile handler.
func (r *Router) registerProfileHandler(handler *handlers.ProfileHandler) {
	r.api.GET("/public-profile", handler.GetPublicProfile)

	profile := r.authed.Group("/profile")
	{
		profile.GET("", handler.GetProfile)
		profile.POST("", handler.SaveProfile)
	}
}

// Register the teammate handler.
func (r *Router) registerTeammateHandler(handler *handlers.TeammateHandler) {
	r.authed.GET("/teammates", handler.GetTeammates)
	r.authed.GET("/past-teammates", handler.GetPastTeammates)
}

// Register the request handler.
func (r *Router) registerRequestHandler(handler *handlers.RequestHandler) {
	r.authed.POST("/requests", handler.SendRequest)
}

// Register the rating handler.
func (r *Router) registerRatingHandler(handler *handlers.RatingHandler) {
	r.authed.POST("/ratings", handler.SubmitRating)
}
