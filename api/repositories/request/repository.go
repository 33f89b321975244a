package repositories

import (
	"context"
	"squadup/pkg/database/models"

	"gorm.io/gorm"
)

// RequestRepository is the public interface for accessing the teammate request repository.
type RequestRepository interface {
	Create(ctx context.Context, fromUserID string, toUserID string) (*models.TeammateRequest, error)
	ListInvolving(ctx context.Context, userID string) ([]*models.TeammateRequest, error)
}

// requestRepository repository structure.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a teammate request repository.
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create inserts a directed request edge between the two users.
func (rr *requestRepository) Create(ctx context.Context, fromUserID string, toUserID string) (*models.TeammateRequest, error) {
	request := &models.TeammateRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
	}

	if err := rr.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}

	return request, nil
}

// ListInvolving returns every request where the user is either endpoint,
// newest first, with both endpoints preloaded.
func (rr *requestRepository) ListInvolving(ctx context.Context, userID string) ([]*models.TeammateRequest, error) {
	var requests []*models.TeammateRequest

	err := rr.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		Where("from_user_id = ?", userID).
		Or("to_user_id = ?", userID).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	return requests, nil
}
