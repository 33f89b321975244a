package authservice

import (
	"squadup/api/services/testutil"

	"gorm.io/gorm"
)

// Helper to initialize the mocks.
func setupTestService() (
	*AuthService,
	*testutil.MockUserRepository,
	*testutil.MockDiscordAPI,
	*testutil.MockSessionStore,
) {
	mockUserRepo := new(testutil.MockUserRepository)
	mockDiscord := new(testutil.MockDiscordAPI)
	mockSessions := new(testutil.MockSessionStore)

	service := &AuthService{
		db:             new(gorm.DB),
		discord:        mockDiscord,
		sessions:       mockSessions,
		UserRepository: mockUserRepo,
	}

	return service, mockUserRepo, mockDiscord, mockSessions
}
