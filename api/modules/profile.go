package modules

import (
	"squadup/api/handlers"
	profileservice "squadup/api/services/profile"
)

func initializeProfileHandler(deps *ModuleDependencies) *handlers.ProfileHandler {
	// Initialize the profile service and handler.
	profileDeps := &profileservice.ProfileServiceDeps{
		DB: deps.DB,
	}

	profileService := profileservice.NewProfileService(profileDeps)

	profileHandlerDeps := &handlers.ProfileHandlerDependencies{
		ProfileService: profileService,
	}

	return handlers.NewProfileHandler(profileHandlerDeps)
}
