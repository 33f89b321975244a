package modules

import (
	"squadup/api/handlers"
	requestservice "squadup/api/services/request"
)

func initializeRequestHandler(deps *ModuleDependencies) *handlers.RequestHandler {
	// Initialize the request service and handler.
	requestDeps := &requestservice.RequestServiceDeps{
		DB:      deps.DB,
		Discord: deps.Discord,
		Logger:  deps.Logger,
		BaseURL: deps.BaseURL,
	}

	requestService := requestservice.NewRequestService(requestDeps)

	requestHandlerDeps := &handlers.RequestHandlerDependencies{
		RequestService: requestService,
	}

	return handlers.NewRequestHandler(requestHandlerDeps)
}
