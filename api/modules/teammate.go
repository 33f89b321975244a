package modules

import (
	"squadup/api/handlers"
	teammateservice "squadup/api/services/teammate"
)

func initializeTeammateHandler(deps *ModuleDependencies) *handlers.TeammateHandler {
	// Initialize the teammate service and handler.
	teammateDeps := &teammateservice.TeammateServiceDeps{
		DB: deps.DB,
	}

	teammateService := teammateservice.NewTeammateService(teammateDeps)

	teammateHandlerDeps := &handlers.TeammateHandlerDependencies{
		TeammateService: teammateService,
	}

	return handlers.NewTeammateHandler(teammateHandlerDeps)
}
