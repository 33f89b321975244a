package ratingservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	servicetestutil "squadup/api/services/testutil"
	"squadup/internal/testutil"
	"squadup/pkg/apperrors"
	"squadup/pkg/database/models"
	"squadup/pkg/messages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Simple test for asserting that everything is fine with the rating service creation.
func TestNewRatingService(t *testing.T) {
	deps := &RatingServiceDeps{
		DB: new(gorm.DB),
	}

	service := NewRatingService(deps)
	assert.NotNil(t, service)
	assert.Equal(t, new(gorm.DB), service.db)
	assert.NotNil(t, service.UserRepository)
	assert.NotNil(t, service.RatingRepository)
	assert.NotNil(t, service.now)
}

// Validation rejections happen before any lookup or write.
func TestRateValidation(t *testing.T) {
	tests := []struct {
		name         string
		input        *RateInput
		expectedCode apperrors.Code
		expectedMsg  string
	}{
		{
			name:         "missing target",
			input:        &RateInput{Stars: 3},
			expectedCode: apperrors.CodeInvalid,
			expectedMsg:  messages.MissingRatingData,
		},
		{
			name:         "missing stars",
			input:        &RateInput{ToUserID: "user-2"},
			expectedCode: apperrors.CodeInvalid,
			expectedMsg:  messages.MissingRatingData,
		},
		{
			name:         "stars below range",
			input:        &RateInput{ToUserID: "user-2", Stars: -1},
			expectedCode: apperrors.CodeInvalid,
			expectedMsg:  messages.StarsOutOfRange,
		},
		{
			name:         "stars above range",
			input:        &RateInput{ToUserID: "user-2", Stars: 6},
			expectedCode: apperrors.CodeInvalid,
			expectedMsg:  messages.StarsOutOfRange,
		},
		{
			name:         "notes too long",
			input:        &RateInput{ToUserID: "user-2", Stars: 4, Notes: strings.Repeat("a", 501)},
			expectedCode: apperrors.CodeInvalid,
			expectedMsg:  messages.NotesTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo, mockRatingRepo := setupTestService()

			err := service.Rate(context.Background(), "111122223333", tt.input)

			assert.True(t, apperrors.IsCode(err, tt.expectedCode))
			assert.Equal(t, tt.expectedMsg, apperrors.PublicMessage(err))
			mockUserRepo.AssertNotCalled(t, "GetByDiscordID")
			mockRatingRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestRateUnknownRater(t *testing.T) {
	service, mockUserRepo, mockRatingRepo := setupTestService()

	mockUserRepo.On("GetByDiscordID", mock.Anything, "111122223333").Return(nil, nil).Once()

	err := service.Rate(context.Background(), "111122223333", &RateInput{ToUserID: "user-2", Stars: 4})

	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	assert.Equal(t, messages.SenderNotFound, apperrors.PublicMessage(err))
	mockRatingRepo.AssertNotCalled(t, "Create")
	servicetestutil.VerifyAllMocks(t, mockUserRepo)
}

func TestRateCooldown(t *testing.T) {
	service, mockUserRepo, mockRatingRepo := setupTestService()

	rater := &models.User{ID: "user-1", DiscordID: "111122223333", Name: "Alice"}
	since := testNow.Add(-RatingCooldown)

	mockUserRepo.On("GetByDiscordID", mock.Anything, rater.DiscordID).Return(rater, nil).Once()
	mockRatingRepo.On("ExistsRecent", mock.Anything, "user-1", "user-2", since).Return(true, nil).Once()

	err := service.Rate(context.Background(), rater.DiscordID, &RateInput{ToUserID: "user-2", Stars: 4})

	assert.True(t, apperrors.IsCode(err, apperrors.CodeRateLimited))
	assert.Equal(t, messages.CooldownActive, apperrors.PublicMessage(err))
	mockRatingRepo.AssertNotCalled(t, "Create")
	servicetestutil.VerifyAllMocks(t, mockUserRepo, mockRatingRepo)
}

func TestRateSuccess(t *testing.T) {
	tests := []struct {
		name          string
		notes         string
		expectedNotes *string
	}{
		{
			name:          "with notes",
			notes:         "  great comms  ",
			expectedNotes: testutil.Ptr("great comms"),
		},
		{
			name:          "without notes",
			notes:         "",
			expectedNotes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo, mockRatingRepo := setupTestService()

			rater := &models.User{ID: "user-1", DiscordID: "111122223333", Name: "Alice"}
			since := testNow.Add(-RatingCooldown)

			mockUserRepo.On("GetByDiscordID", mock.Anything, rater.DiscordID).Return(rater, nil).Once()
			mockRatingRepo.On("ExistsRecent", mock.Anything, "user-1", "user-2", since).Return(false, nil).Once()
			mockRatingRepo.On("Create", mock.Anything, mock.MatchedBy(func(rating *models.Rating) bool {
				if rating.FromUserID != "user-1" || rating.ToUserID != "user-2" || rating.Stars != 4 {
					return false
				}
				if tt.expectedNotes == nil {
					return rating.Notes == nil
				}
				return rating.Notes != nil && *rating.Notes == *tt.expectedNotes
			})).Return(nil).Once()

			err := service.Rate(context.Background(), rater.DiscordID, &RateInput{
				ToUserID: "user-2",
				Stars:    4,
				Notes:    tt.notes,
			})

			assert.NoError(t, err)
			servicetestutil.VerifyAllMocks(t, mockUserRepo, mockRatingRepo)
		})
	}
}

func TestRateRepositoryErrors(t *testing.T) {
	t.Run("rater lookup error", func(t *testing.T) {
		service, mockUserRepo, _ := setupTestService()

		mockUserRepo.On("GetByDiscordID", mock.Anything, "111122223333").
			Return(nil, errors.New(testutil.DatabaseError)).Once()

		err := service.Rate(context.Background(), "111122223333", &RateInput{ToUserID: "user-2", Stars: 4})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), testutil.DatabaseError)
	})

	t.Run("cooldown check error", func(t *testing.T) {
		service, mockUserRepo, mockRatingRepo := setupTestService()

		rater := &models.User{ID: "user-1", DiscordID: "111122223333"}
		mockUserRepo.On("GetByDiscordID", mock.Anything, rater.DiscordID).Return(rater, nil).Once()
		mockRatingRepo.On("ExistsRecent", mock.Anything, "user-1", "user-2", mock.Anything).
			Return(false, errors.New(testutil.DatabaseError)).Once()

		err := service.Rate(context.Background(), rater.DiscordID, &RateInput{ToUserID: "user-2", Stars: 4})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), testutil.DatabaseError)
		mockRatingRepo.AssertNotCalled(t, "Create")
	})
}
