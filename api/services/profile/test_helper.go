package profileservice

import (
	"squadup/api/services/testutil"

	"gorm.io/gorm"
)

// Helper to initialize the mocks.
func setupTestService() (
	*ProfileService,
	*testutil.MockUserRepository,
	*testutil.MockRatingRepository,
) {
	mockUserRepo := new(testutil.MockUserRepository)
	mockRatingRepo := new(testutil.MockRatingRepository)

	service := &ProfileService{
		db:               new(gorm.DB),
		UserRepository:   mockUserRepo,
		RatingRepository: mockRatingRepo,
	}

	return service, mockUserRepo, mockRatingRepo
}
