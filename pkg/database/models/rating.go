package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is one user's star rating of another after having been matched.
// Rows are never updated or deleted; aggregates are computed on demand.
type Rating struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	FromUserID string    `gorm:"type:uuid;not null;index:idx_rating_pair,priority:1" json:"fromUserId"`
	ToUserID   string    `gorm:"type:uuid;not null;index:idx_rating_pair,priority:2;index" json:"toUserId"`
	Stars      int       `gorm:"not null" json:"stars"`
	Notes      *string   `gorm:"type:varchar(500)" json:"notes"`
	CreatedAt  time.Time `gorm:"index:idx_rating_pair,priority:3" json:"createdAt"`
}

// Generate the uuid before creating.
func (r *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
