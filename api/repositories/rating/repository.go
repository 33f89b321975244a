package repositories

import (
	"context"
	"squadup/api/dto"
	"squadup/pkg/database/models"
	"time"

	"gorm.io/gorm"
)

// RatingRepository is the public interface for accessing the rating repository.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	ExistsRecent(ctx context.Context, fromUserID string, toUserID string, since time.Time) (bool, error)
	AggregateFor(ctx context.Context, userID string) (*dto.RatingAggregate, error)
	AggregateForMany(ctx context.Context, userIDs []string) (map[string]*dto.RatingAggregate, error)
}

// ratingRepository repository structure.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a rating repository.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// aggregateRow is the raw data of a grouped rating aggregation.
type aggregateRow struct {
	ToUserID string  `gorm:"column:to_user_id"`
	Average  float64 `gorm:"column:average"`
	Count    int     `gorm:"column:count"`
}

// Create inserts a rating row.
func (rr *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return rr.db.WithContext(ctx).Create(rating).Error
}

// ExistsRecent reports whether the pair already has a rating newer than since.
func (rr *ratingRepository) ExistsRecent(ctx context.Context, fromUserID string, toUserID string, since time.Time) (bool, error) {
	var count int64
	err := rr.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("from_user_id = ? AND to_user_id = ? AND created_at >= ?", fromUserID, toUserID, since).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AggregateFor computes the average and count of ratings toward one user.
// A user with no ratings yields a zero aggregate, never an error.
func (rr *ratingRepository) AggregateFor(ctx context.Context, userID string) (*dto.RatingAggregate, error) {
	aggregates, err := rr.AggregateForMany(ctx, []string{userID})
	if err != nil {
		return nil, err
	}

	if aggregate, exists := aggregates[userID]; exists {
		return aggregate, nil
	}

	return &dto.RatingAggregate{}, nil
}

// AggregateForMany computes the rating aggregates for a set of users in one
// grouped query. Users without ratings are absent from the result map.
func (rr *ratingRepository) AggregateForMany(ctx context.Context, userIDs []string) (map[string]*dto.RatingAggregate, error) {
	aggregates := make(map[string]*dto.RatingAggregate, len(userIDs))
	if len(userIDs) == 0 {
		return aggregates, nil
	}

	var rows []aggregateRow
	err := rr.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("to_user_id, AVG(stars) as average, COUNT(*) as count").
		Where("to_user_id IN ?", userIDs).
		Group("to_user_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		aggregates[row.ToUserID] = &dto.RatingAggregate{
			Average: row.Average,
			Count:   row.Count,
		}
	}

	return aggregates, nil
}
