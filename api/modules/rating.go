package modules

import (
	"squadup/api/handlers"
	ratingservice "squadup/api/services/rating"
)

func initializeRatingHandler(deps *ModuleDependencies) *handlers.RatingHandler {
	// Initialize the rating service and handler.
	ratingDeps := &ratingservice.RatingServiceDeps{
		DB: deps.DB,
	}

	ratingService := ratingservice.NewRatingService(ratingDeps)

	ratingHandlerDeps := &handlers.RatingHandlerDependencies{
		RatingService: ratingService,
	}

	return handlers.NewRatingHandler(ratingHandlerDeps)
}
