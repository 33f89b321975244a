package testutil

import (
	"context"
	"squadup/api/dto"
	"squadup/api/filters"
	"squadup/pkg/database/models"
	"squadup/pkg/discord"
	"squadup/pkg/session"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// VerifyAllMocks asserts the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Repository mocks.
// ============================================================================

// MockUserRepository mocks the user repository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.User, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByAnyID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindTeammates(ctx context.Context, filter *filters.TeammateSearchFilter) ([]*models.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

// MockRequestRepository mocks the teammate request repository.
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, fromUserID string, toUserID string) (*models.TeammateRequest, error) {
	args := m.Called(ctx, fromUserID, toUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeammateRequest), args.Error(1)
}

func (m *MockRequestRepository) ListInvolving(ctx context.Context, userID string) ([]*models.TeammateRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TeammateRequest), args.Error(1)
}

// MockRatingRepository mocks the rating repository.
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) ExistsRecent(ctx context.Context, fromUserID string, toUserID string, since time.Time) (bool, error) {
	args := m.Called(ctx, fromUserID, toUserID, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepository) AggregateFor(ctx context.Context, userID string) (*dto.RatingAggregate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingAggregate), args.Error(1)
}

func (m *MockRatingRepository) AggregateForMany(ctx context.Context, userIDs []string) (map[string]*dto.RatingAggregate, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*dto.RatingAggregate), args.Error(1)
}

// ============================================================================
// Collaborator mocks.
// ============================================================================

// MockDiscordAPI mocks the Discord client surface.
type MockDiscordAPI struct {
	mock.Mock
}

func (m *MockDiscordAPI) CreatePrivateChannel(ctx context.Context, name string, memberIDs ...string) (*discord.Channel, error) {
	args := m.Called(ctx, name, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discord.Channel), args.Error(1)
}

func (m *MockDiscordAPI) CreateDM(ctx context.Context, recipientID string) (*discord.Channel, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discord.Channel), args.Error(1)
}

func (m *MockDiscordAPI) CreateMessage(ctx context.Context, channelID string, content string) error {
	args := m.Called(ctx, channelID, content)
	return args.Error(0)
}

func (m *MockDiscordAPI) ExchangeCode(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockDiscordAPI) CurrentUser(ctx context.Context, accessToken string) (*discord.AuthedUser, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discord.AuthedUser), args.Error(1)
}

func (m *MockDiscordAPI) ChannelURL(channelID string) string {
	args := m.Called(channelID)
	return args.String(0)
}

// MockSessionStore mocks the session store.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, sess *session.Session) (string, error) {
	args := m.Called(ctx, sess)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockLogger mocks the file logger used by the orchestration pipeline.
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Infof(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Errorf(format string, args ...any) {
	m.Called(format, args)
}

// NoopLogger discards everything, for tests that don't assert on logging.
type NoopLogger struct{}

func (NoopLogger) Infof(format string, args ...any)  {}
func (NoopLogger) Errorf(format string, args ...any) {}
