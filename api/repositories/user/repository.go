package repositories

import (
	"context"
	"errors"
	"fmt"
	"squadup/api/filters"
	"squadup/pkg/database/models"
	"squadup/pkg/messages"

	"gorm.io/gorm"
)

const teammateLimit = 12

// UserRepository is the public interface for accessing the user repository.
type UserRepository interface {
	GetByDiscordID(ctx context.Context, discordID string) (*models.User, error)
	GetByAnyID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	FindTeammates(ctx context.Context, filter *filters.TeammateSearchFilter) ([]*models.User, error)
}

// userRepository repository structure.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByDiscordID returns the user for a given Discord id, or nil when absent.
func (ur *userRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.User, error) {
	var user models.User
	if err := ur.db.WithContext(ctx).Where("discord_id = ?", discordID).First(&user).Error; err != nil {
		// If the record was not found, doesn't need to return a error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetByAnyID returns the user matching either the internal or the Discord id.
// Returns nil when absent.
func (ur *userRepository) GetByAnyID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := ur.db.WithContext(ctx).
		Where("discord_id = ?", id).
		Or("id::text = ?", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// Create inserts a new user.
func (ur *userRepository) Create(ctx context.Context, user *models.User) error {
	return ur.db.WithContext(ctx).Create(user).Error
}

// Save persists all fields of an already loaded user.
func (ur *userRepository) Save(ctx context.Context, user *models.User) error {
	return ur.db.WithContext(ctx).Save(user).Error
}

// FindTeammates returns up to 12 candidate users matching the resolved
// filter, excluding the requester, in storage order.
func (ur *userRepository) FindTeammates(ctx context.Context, filter *filters.TeammateSearchFilter) ([]*models.User, error) {
	if filter == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	query := ur.db.WithContext(ctx).
		Where("discord_id != ?", filter.ExcludeDiscordID)

	// Add the search parameters only if the respective value was passed.
	if filter.Game != "" {
		query = query.Where("game = ?", filter.Game)
	}

	if len(filter.Ranks) > 0 {
		query = query.Where("LOWER(rank) IN ?", filter.Ranks)
	}

	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}

	if filter.Playstyle != "" {
		query = query.Where("playstyle = ?", filter.Playstyle)
	}

	if len(filter.Regions) > 0 {
		query = query.Where("region IN ?", filter.Regions)
	}

	var users []*models.User
	if err := query.Limit(teammateLimit).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
