package teammateservice

import (
	"squadup/api/services/testutil"

	"gorm.io/gorm"
)

// Helper to initialize the mocks.
func setupTestService() (
	*TeammateService,
	*testutil.MockUserRepository,
	*testutil.MockRequestRepository,
	*testutil.MockRatingRepository,
) {
	mockUserRepo := new(testutil.MockUserRepository)
	mockRequestRepo := new(testutil.MockRequestRepository)
	mockRatingRepo := new(testutil.MockRatingRepository)

	service := &TeammateService{
		db:                new(gorm.DB),
		UserRepository:    mockUserRepo,
		RequestRepository: mockRequestRepo,
		RatingRepository:  mockRatingRepo,
	}

	return service, mockUserRepo, mockRequestRepo, mockRatingRepo
}
