package profileservice

import (
	"context"
	"squadup/api/dto"
	ratingrepo "squadup/api/repositories/rating"
	userrepo "squadup/api/repositories/user"
	"squadup/pkg/apperrors"
	"squadup/pkg/database/models"
	"squadup/pkg/messages"
	"squadup/pkg/session"
	"strings"

	"gorm.io/gorm"
)

// ProfileService handles the profile reads and writes.
type ProfileService struct {
	db *gorm.DB

	UserRepository   userrepo.UserRepository
	RatingRepository ratingrepo.RatingRepository
}

// ProfileServiceDeps is the dependency list for the profile service.
type ProfileServiceDeps struct {
	DB *gorm.DB
}

// NewProfileService creates a service for handling profiles.
func NewProfileService(deps *ProfileServiceDeps) *ProfileService {
	return &ProfileService{
		db:               deps.DB,
		UserRepository:   userrepo.NewUserRepository(deps.DB),
		RatingRepository: ratingrepo.NewRatingRepository(deps.DB),
	}
}

// ProfileInput is the preference payload of a profile save.
type ProfileInput struct {
	Game      string `json:"game"`
	Rank      string `json:"rank"`
	Platform  string `json:"platform"`
	Playstyle string `json:"playstyle"`
	Region    string `json:"region"`
}

// GetProfile returns the stored profile for the session user, or nil when the
// user never saved one.
func (ps *ProfileService) GetProfile(ctx context.Context, discordID string) (*models.User, error) {
	return ps.UserRepository.GetByDiscordID(ctx, discordID)
}

// SaveProfile upserts the session user's preferences and returns the full
// updated profile. The last selected game and rank move in lockstep with the
// current ones on every save.
func (ps *ProfileService) SaveProfile(ctx context.Context, sess *session.Session, input *ProfileInput) (*models.User, error) {
	game := optional(strings.TrimSpace(input.Game))
	rank := optional(strings.ToLower(strings.TrimSpace(input.Rank)))
	platform := optional(strings.TrimSpace(input.Platform))
	playstyle := optional(strings.TrimSpace(input.Playstyle))
	region := optional(strings.TrimSpace(input.Region))

	user, err := ps.UserRepository.GetByDiscordID(ctx, sess.DiscordID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		name := sess.Name
		if name == "" {
			name = "Unknown"
		}

		user = &models.User{
			DiscordID: sess.DiscordID,
			Name:      name,
			Image:     optional(sess.Image),
			Game:      game,
			Rank:      rank,
			LastGame:  game,
			LastRank:  rank,
			Platform:  platform,
			Playstyle: playstyle,
			Region:    region,
		}

		if err := ps.UserRepository.Create(ctx, user); err != nil {
			return nil, err
		}

		return user, nil
	}

	user.Game = game
	user.Rank = rank
	user.LastGame = game
	user.LastRank = rank
	user.Platform = platform
	user.Playstyle = playstyle
	user.Region = region

	if err := ps.UserRepository.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetPublicProfile returns the public-safe fields and rating aggregate for a
// user matched by either the internal or the Discord id.
func (ps *ProfileService) GetPublicProfile(ctx context.Context, userID string) (*dto.PublicProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.New(apperrors.CodeInvalid, messages.MissingUserId)
	}

	user, err := ps.UserRepository.GetByAnyID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, messages.UserNotFound)
	}

	aggregate, err := ps.RatingRepository.AggregateFor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return dto.NewPublicProfile(user, aggregate), nil
}

// optional converts an empty string to a nil field.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
