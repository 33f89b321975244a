package dto

import "squadup/pkg/database/models"

// PublicProfile is the public-safe view of a user plus its rating aggregate.
type PublicProfile struct {
	ID          string  `json:"id"`
	DiscordID   string  `json:"discordId"`
	Name        string  `json:"name"`
	Image       *string `json:"image"`
	Game        *string `json:"game"`
	Rank        *string `json:"rank"`
	Platform    *string `json:"platform"`
	Playstyle   *string `json:"playstyle"`
	Region      *string `json:"region"`
	AvgRating   float64 `json:"avgRating"`
	RatingCount int     `json:"ratingCount"`
}

// NewPublicProfile builds the public view from a user and its aggregate.
func NewPublicProfile(user *models.User, aggregate *RatingAggregate) *PublicProfile {
	return &PublicProfile{
		ID:          user.ID,
		DiscordID:   user.DiscordID,
		Name:        user.Name,
		Image:       user.Image,
		Game:        user.Game,
		Rank:        user.Rank,
		Platform:    user.Platform,
		Playstyle:   user.Playstyle,
		Region:      user.Region,
		AvgRating:   aggregate.Average,
		RatingCount: aggregate.Count,
	}
}
