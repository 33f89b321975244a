package ratingservice

import (
	"time"

	"squadup/api/services/testutil"

	"gorm.io/gorm"
)

// Fixed clock so the cooldown window is deterministic.
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// Helper to initialize the mocks.
func setupTestService() (
	*RatingService,
	*testutil.MockUserRepository,
	*testutil.MockRatingRepository,
) {
	mockUserRepo := new(testutil.MockUserRepository)
	mockRatingRepo := new(testutil.MockRatingRepository)

	service := &RatingService{
		db:               new(gorm.DB),
		UserRepository:   mockUserRepo,
		RatingRepository: mockRatingRepo,
		now:              func() time.Time { return testNow },
	}

	return service, mockUserRepo, mockRatingRepo
}
