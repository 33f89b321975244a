package teammateservice

import (
	"context"
	"squadup/api/dto"
	"squadup/api/filters"
	ratingrepo "squadup/api/repositories/rating"
	requestrepo "squadup/api/repositories/request"
	userrepo "squadup/api/repositories/user"
	"squadup/pkg/database/models"

	"gorm.io/gorm"
)

// TeammateService handles the candidate search and the past teammates view.
type TeammateService struct {
	db *gorm.DB

	UserRepository    userrepo.UserRepository
	RequestRepository requestrepo.RequestRepository
	RatingRepository  ratingrepo.RatingRepository
}

// TeammateServiceDeps is the dependency list for the teammate service.
type TeammateServiceDeps struct {
	DB *gorm.DB
}

// NewTeammateService creates a service for handling teammate lookups.
func NewTeammateService(deps *TeammateServiceDeps) *TeammateService {
	return &TeammateService{
		db:                deps.DB,
		UserRepository:    userrepo.NewUserRepository(deps.DB),
		RequestRepository: requestrepo.NewRequestRepository(deps.DB),
		RatingRepository:  ratingrepo.NewRatingRepository(deps.DB),
	}
}

// Search returns the candidate set for the session user and filter criteria.
// Absent criteria are unconstrained; no match yields an empty sequence.
func (ts *TeammateService) Search(ctx context.Context, discordID string, params filters.TeammateSearchParams) ([]*dto.TeammateResult, error) {
	filter := filters.NewTeammateSearchFilter(params, discordID)

	users, err := ts.UserRepository.FindTeammates(ctx, filter)
	if err != nil {
		return nil, err
	}

	var dtoHelper dto.TeammateResult
	return dtoHelper.FromUserSlice(users), nil
}

// PastTeammates returns the unique counterparts of every teammate request
// involving the session user, newest first, enriched with rating aggregates.
func (ts *TeammateService) PastTeammates(ctx context.Context, discordID string) ([]*dto.PastTeammate, error) {
	user, err := ts.UserRepository.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	// Authenticated but never persisted: nothing to list.
	if user == nil {
		return []*dto.PastTeammate{}, nil
	}

	requests, err := ts.RequestRepository.ListInvolving(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	counterparts := uniqueCounterparts(requests, user.ID)

	ids := make([]string, 0, len(counterparts))
	for _, counterpart := range counterparts {
		ids = append(ids, counterpart.ID)
	}

	aggregates, err := ts.RatingRepository.AggregateForMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PastTeammate, 0, len(counterparts))
	for _, counterpart := range counterparts {
		aggregate, exists := aggregates[counterpart.ID]
		if !exists {
			aggregate = &dto.RatingAggregate{}
		}

		result = append(result, &dto.PastTeammate{
			ID:          counterpart.ID,
			Name:        counterpart.Name,
			Image:       counterpart.Image,
			AvgRating:   aggregate.Average,
			RatingCount: aggregate.Count,
		})
	}

	return result, nil
}

// uniqueCounterparts collapses the request edges to the first occurrence of
// each user on the other end, preserving the given order.
func uniqueCounterparts(requests []*models.TeammateRequest, userID string) []*models.User {
	seen := make(map[string]bool, len(requests))
	counterparts := make([]*models.User, 0, len(requests))

	for _, request := range requests {
		other := request.FromUser
		if request.FromUserID == userID {
			other = request.ToUser
		}

		if other == nil || seen[other.ID] {
			continue
		}

		seen[other.ID] = true
		counterparts = append(counterparts, other)
	}

	return counterparts
}
