package requestservice

import (
	"squadup/api/services/testutil"

	"gorm.io/gorm"
)

// Helper to initialize the mocks.
func setupTestService() (
	*RequestService,
	*testutil.MockUserRepository,
	*testutil.MockRequestRepository,
	*testutil.MockDiscordAPI,
) {
	mockUserRepo := new(testutil.MockUserRepository)
	mockRequestRepo := new(testutil.MockRequestRepository)
	mockDiscord := new(testutil.MockDiscordAPI)

	service := &RequestService{
		db:                new(gorm.DB),
		discord:           mockDiscord,
		logger:            testutil.NoopLogger{},
		baseURL:           "https://squadup.example",
		UserRepository:    mockUserRepo,
		RequestRepository: mockRequestRepo,
	}

	return service, mockUserRepo, mockRequestRepo, mockDiscord
}
