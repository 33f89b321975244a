package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeammateRequest is one outreach event from one user to another.
// A request is a directed edge; nothing prevents duplicates between the same pair.
// Rows are never updated or deleted.
type TeammateRequest struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	FromUserID string    `gorm:"type:uuid;not null;index" json:"fromUserId"`
	ToUserID   string    `gorm:"type:uuid;not null;index" json:"toUserId"`
	CreatedAt  time.Time `json:"createdAt"`

	FromUser *User `gorm:"foreignKey:FromUserID" json:"fromUser,omitempty"`
	ToUser   *User `gorm:"foreignKey:ToUserID" json:"toUser,omitempty"`
}

// Generate the uuid before creating.
func (r *TeammateRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
