package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is one player profile.
// DiscordID is the identity issued by the provider and is the lookup key used
// from session context. The internal ID is the primary identity for relationships.
type User struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	DiscordID string  `gorm:"type:varchar(32);not null;uniqueIndex" json:"discordId"`
	Name      string  `gorm:"type:varchar(100);not null" json:"name"`
	Image     *string `gorm:"type:text" json:"image"`

	// Preference fields. Validated by the UI, stored as free text.
	// Rank is stored lower-cased.
	Game      *string `gorm:"type:varchar(50)" json:"game"`
	Rank      *string `gorm:"type:varchar(50)" json:"rank"`
	LastGame  *string `gorm:"type:varchar(50)" json:"lastGame"`
	LastRank  *string `gorm:"type:varchar(50)" json:"lastRank"`
	Platform  *string `gorm:"type:varchar(50)" json:"platform"`
	Playstyle *string `gorm:"type:varchar(50)" json:"playstyle"`
	Region    *string `gorm:"type:varchar(10)" json:"region"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Generate the uuid before creating.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
