package requestservice

import (
	"context"
	"errors"
	"testing"

	servicetestutil "squadup/api/services/testutil"
	"squadup/internal/testutil"
	"squadup/pkg/apperrors"
	"squadup/pkg/database/models"
	"squadup/pkg/discord"
	"squadup/pkg/messages"
	"squadup/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

var (
	testSender = &models.User{ID: "user-1", DiscordID: "111122223333", Name: "Alice"}
	testTarget = &models.User{ID: "user-2", DiscordID: "444455556666", Name: "Bob"}
	testSess   = &session.Session{DiscordID: "111122223333", Name: "Alice"}
)

// Simple test for asserting that everything is fine with the request service creation.
func TestNewRequestService(t *testing.T) {
	deps := &RequestServiceDeps{
		DB:      new(gorm.DB),
		Discord: new(servicetestutil.MockDiscordAPI),
		Logger:  servicetestutil.NoopLogger{},
		BaseURL: "https://squadup.example",
	}

	service := NewRequestService(deps)
	assert.NotNil(t, service)
	assert.Equal(t, new(gorm.DB), service.db)
	assert.NotNil(t, service.UserRepository)
	assert.NotNil(t, service.RequestRepository)
}

func TestChannelName(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected string
	}{
		{
			name:     "long ids",
			from:     "111122223333",
			to:       "444455556666",
			expected: "squad-up-3333-6666",
		},
		{
			name:     "short ids kept whole",
			from:     "42",
			to:       "7",
			expected: "squad-up-42-7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, channelName(tt.from, tt.to))
		})
	}
}

func TestSendValidation(t *testing.T) {
	service, mockUserRepo, _, _ := setupTestService()

	result, err := service.Send(context.Background(), testSess, "")

	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalid))
	assert.Equal(t, messages.MissingTargetUser, apperrors.PublicMessage(err))
	assert.Nil(t, result)
	mockUserRepo.AssertNotCalled(t, "GetByDiscordID")
}

func TestSendUserResolution(t *testing.T) {
	tests := []struct {
		name         string
		targetUser   *models.User
		senderUser   *models.User
		senderLookup bool
		expectedCode apperrors.Code
		expectedMsg  string
	}{
		{
			name:         "unknown target",
			targetUser:   nil,
			senderLookup: false,
			expectedCode: apperrors.CodeNotFound,
			expectedMsg:  messages.TargetNotFound,
		},
		{
			name:         "unknown sender",
			targetUser:   testTarget,
			senderUser:   nil,
			senderLookup: true,
			expectedCode: apperrors.CodeNotFound,
			expectedMsg:  messages.SenderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo, mockRequestRepo, _ := setupTestService()

			mockUserRepo.On("GetByDiscordID", mock.Anything, testTarget.DiscordID).Return(tt.targetUser, nil).Once()
			if tt.senderLookup {
				mockUserRepo.On("GetByDiscordID", mock.Anything, testSess.DiscordID).Return(tt.senderUser, nil).Once()
			}

			result, err := service.Send(context.Background(), testSess, testTarget.DiscordID)

			assert.True(t, apperrors.IsCode(err, tt.expectedCode))
			assert.Equal(t, tt.expectedMsg, apperrors.PublicMessage(err))
			assert.Nil(t, result)
			mockRequestRepo.AssertNotCalled(t, "Create")
			servicetestutil.VerifyAllMocks(t, mockUserRepo)
		})
	}
}

// The request row must survive any channel creation failure.
func TestSendChannelFailures(t *testing.T) {
	tests := []struct {
		name         string
		channelError error
		expectedCode apperrors.Code
		expectedMsg  string
	}{
		{
			name:         "bot not configured",
			channelError: discord.ErrNotConfigured,
			expectedCode: apperrors.CodeMisconfigured,
			expectedMsg:  messages.BotNotConfigured,
		},
		{
			name:         "upstream rejection",
			channelError: &discord.APIError{StatusCode: 403, Body: "Missing Permissions"},
			expectedCode: apperrors.CodeUpstream,
			expectedMsg:  "discord channel error: Missing Permissions",
		},
		{
			name:         "transport failure",
			channelError: errors.New("connection reset"),
			expectedCode: apperrors.CodeUpstream,
			expectedMsg:  "discord channel error: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo, mockRequestRepo, mockDiscord := setupTestService()

			request := &models.TeammateRequest{ID: "req-1", FromUserID: testSender.ID, ToUserID: testTarget.ID}

			mockUserRepo.On("GetByDiscordID", mock.Anything, testTarget.DiscordID).Return(testTarget, nil).Once()
			mockUserRepo.On("GetByDiscordID", mock.Anything, testSess.DiscordID).Return(testSender, nil).Once()
			mockRequestRepo.On("Create", mock.Anything, testSender.ID, testTarget.ID).Return(request, nil).Once()
			mockDiscord.On("CreatePrivateChannel", mock.Anything, "squad-up-3333-6666",
				[]string{testSender.DiscordID, testTarget.DiscordID}).Return(nil, tt.channelError).Once()

			result, err := service.Send(context.Background(), testSess, testTarget.DiscordID)

			assert.True(t, apperrors.IsCode(err, tt.expectedCode))
			assert.Equal(t, tt.expectedMsg, apperrors.PublicMessage(err))
			assert.Nil(t, result)

			// The row was written before the channel attempt.
			servicetestutil.VerifyAllMocks(t, mockUserRepo, mockRequestRepo, mockDiscord)
		})
	}
}

func TestSendSuccess(t *testing.T) {
	service, mockUserRepo, mockRequestRepo, mockDiscord := setupTestService()

	request := &models.TeammateRequest{ID: "req-1", FromUserID: testSender.ID, ToUserID: testTarget.ID}
	channel := &discord.Channel{ID: "chan-1"}
	targetDM := &discord.Channel{ID: "dm-target"}
	senderDM := &discord.Channel{ID: "dm-sender"}
	channelURL := "https://discord.com/channels/guild-1/chan-1"

	mockUserRepo.On("GetByDiscordID", mock.Anything, testTarget.DiscordID).Return(testTarget, nil).Once()
	mockUserRepo.On("GetByDiscordID", mock.Anything, testSess.DiscordID).Return(testSender, nil).Once()
	mockRequestRepo.On("Create", mock.Anything, testSender.ID, testTarget.ID).Return(request, nil).Once()
	mockDiscord.On("CreatePrivateChannel", mock.Anything, "squad-up-3333-6666",
		[]string{testSender.DiscordID, testTarget.DiscordID}).Return(channel, nil).Once()
	mockDiscord.On("ChannelURL", channel.ID).Return(channelURL).Once()

	mockDiscord.On("CreateDM", mock.Anything, testTarget.DiscordID).Return(targetDM, nil).Once()
	mockDiscord.On("CreateMessage", mock.Anything, targetDM.ID,
		"Alice wants to squad up! Join your private chat: "+channelURL+
			" | Profile: https://squadup.example/u/"+testSender.DiscordID).Return(nil).Once()

	mockDiscord.On("CreateDM", mock.Anything, testSender.DiscordID).Return(senderDM, nil).Once()
	mockDiscord.On("CreateMessage", mock.Anything, senderDM.ID,
		"Your private chat is ready: "+channelURL).Return(nil).Once()

	mockDiscord.On("CreateMessage", mock.Anything, channel.ID, mock.AnythingOfType("string")).Return(nil).Once()

	result, err := service.Send(context.Background(), testSess, testTarget.DiscordID)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, channelURL, result.ChannelURL)
	servicetestutil.VerifyAllMocks(t, mockUserRepo, mockRequestRepo, mockDiscord)
}

// Notification failures are logged but never fail the request.
func TestSendSurvivesClosedDMs(t *testing.T) {
	service, mockUserRepo, mockRequestRepo, mockDiscord := setupTestService()

	mockLogger := new(servicetestutil.MockLogger)
	mockLogger.On("Infof", mock.Anything, mock.Anything).Return()
	mockLogger.On("Errorf", mock.Anything, mock.Anything).Return()
	service.logger = mockLogger

	request := &models.TeammateRequest{ID: "req-1", FromUserID: testSender.ID, ToUserID: testTarget.ID}
	channel := &discord.Channel{ID: "chan-1"}
	channelURL := "https://discord.com/channels/guild-1/chan-1"

	mockUserRepo.On("GetByDiscordID", mock.Anything, testTarget.DiscordID).Return(testTarget, nil).Once()
	mockUserRepo.On("GetByDiscordID", mock.Anything, testSess.DiscordID).Return(testSender, nil).Once()
	mockRequestRepo.On("Create", mock.Anything, testSender.ID, testTarget.ID).Return(request, nil).Once()
	mockDiscord.On("CreatePrivateChannel", mock.Anything, "squad-up-3333-6666",
		[]string{testSender.DiscordID, testTarget.DiscordID}).Return(channel, nil).Once()
	mockDiscord.On("ChannelURL", channel.ID).Return(channelURL).Once()

	// Both DMs rejected, the recipients disabled direct messages.
	mockDiscord.On("CreateDM", mock.Anything, testTarget.DiscordID).
		Return(nil, &discord.APIError{StatusCode: 403, Body: "Cannot send messages to this user"}).Once()
	mockDiscord.On("CreateDM", mock.Anything, testSender.DiscordID).
		Return(nil, &discord.APIError{StatusCode: 403, Body: "Cannot send messages to this user"}).Once()

	mockDiscord.On("CreateMessage", mock.Anything, channel.ID, mock.AnythingOfType("string")).Return(nil).Once()

	result, err := service.Send(context.Background(), testSess, testTarget.DiscordID)

	assert.NoError(t, err)
	assert.Equal(t, channelURL, result.ChannelURL)
	mockLogger.AssertNumberOfCalls(t, "Infof", 1)
	mockLogger.AssertNumberOfCalls(t, "Errorf", 2)
	servicetestutil.VerifyAllMocks(t, mockUserRepo, mockRequestRepo, mockDiscord, mockLogger)
}

func TestSendPersistenceError(t *testing.T) {
	service, mockUserRepo, mockRequestRepo, mockDiscord := setupTestService()

	mockUserRepo.On("GetByDiscordID", mock.Anything, testTarget.DiscordID).Return(testTarget, nil).Once()
	mockUserRepo.On("GetByDiscordID", mock.Anything, testSess.DiscordID).Return(testSender, nil).Once()
	mockRequestRepo.On("Create", mock.Anything, testSender.ID, testTarget.ID).
		Return(nil, errors.New(testutil.DatabaseError)).Once()

	result, err := service.Send(context.Background(), testSess, testTarget.DiscordID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), testutil.DatabaseError)
	assert.Nil(t, result)
	mockDiscord.AssertNotCalled(t, "CreatePrivateChannel")
	servicetestutil.VerifyAllMocks(t, mockUserRepo, mockRequestRepo)
}
