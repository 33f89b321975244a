package ratingservice

import (
	"context"
	ratingrepo "squadup/api/repositories/rating"
	userrepo "squadup/api/repositories/user"
	"squadup/pkg/apperrors"
	"squadup/pkg/database/models"
	"squadup/pkg/messages"
	"strings"
	"time"

	"gorm.io/gorm"
)

// RatingCooldown is the window during which a rater may not re-rate the same target.
const RatingCooldown = 10 * time.Minute

const maxNotesLength = 500

// RatingService handles the rating submissions.
type RatingService struct {
	db *gorm.DB

	UserRepository   userrepo.UserRepository
	RatingRepository ratingrepo.RatingRepository

	// now is swappable for the cooldown tests.
	now func() time.Time
}

// RatingServiceDeps is the dependency list for the rating service.
type RatingServiceDeps struct {
	DB *gorm.DB
}

// NewRatingService creates a service for handling ratings.
func NewRatingService(deps *RatingServiceDeps) *RatingService {
	return &RatingService{
		db:               deps.DB,
		UserRepository:   userrepo.NewUserRepository(deps.DB),
		RatingRepository: ratingrepo.NewRatingRepository(deps.DB),
		now:              time.Now,
	}
}

// RateInput is the payload of a rating submission.
type RateInput struct {
	ToUserID string `json:"toUserId"`
	Stars    int    `json:"stars"`
	Notes    string `json:"notes"`
}

// Rate validates and records one star rating from the session user toward the
// target, enforcing the per-pair cooldown. Nothing is written on rejection.
func (rs *RatingService) Rate(ctx context.Context, discordID string, input *RateInput) error {
	if input.ToUserID == "" || input.Stars == 0 {
		return apperrors.New(apperrors.CodeInvalid, messages.MissingRatingData)
	}

	if input.Stars < 1 || input.Stars > 5 {
		return apperrors.New(apperrors.CodeInvalid, messages.StarsOutOfRange)
	}

	notes := strings.TrimSpace(input.Notes)
	if len(notes) > maxNotesLength {
		return apperrors.New(apperrors.CodeInvalid, messages.NotesTooLong)
	}

	rater, err := rs.UserRepository.GetByDiscordID(ctx, discordID)
	if err != nil {
		return err
	}

	if rater == nil {
		return apperrors.New(apperrors.CodeNotFound, messages.SenderNotFound)
	}

	since := rs.clock()().Add(-RatingCooldown)
	recent, err := rs.RatingRepository.ExistsRecent(ctx, rater.ID, input.ToUserID, since)
	if err != nil {
		return err
	}

	if recent {
		return apperrors.New(apperrors.CodeRateLimited, messages.CooldownActive)
	}

	rating := &models.Rating{
		FromUserID: rater.ID,
		ToUserID:   input.ToUserID,
		Stars:      input.Stars,
	}
	if notes != "" {
		rating.Notes = &notes
	}

	return rs.RatingRepository.Create(ctx, rating)
}

func (rs *RatingService) clock() func() time.Time {
	if rs.now != nil {
		return rs.now
	}
	return time.Now
}
