package modules

import (
	"squadup/api/handlers"
	authservice "squadup/api/services/auth"
)

func initializeAuthHandler(deps *ModuleDependencies) *handlers.AuthHandler {
	// Initialize the auth service and handler.
	authDeps := &authservice.AuthServiceDeps{
		DB:       deps.DB,
		Discord:  deps.Discord,
		Sessions: deps.Sessions,
	}

	authService := authservice.NewAuthService(authDeps)

	authHandlerDeps := &handlers.AuthHandlerDependencies{
		AuthService: authService,
	}

	return handlers.NewAuthHandler(authHandlerDeps)
}
