package dto

import "squadup/pkg/database/models"

// TeammateResult is one candidate returned by the matching filter.
type TeammateResult struct {
	ID        string  `json:"id"`
	DiscordID string  `json:"discordId"`
	Name      string  `json:"name"`
	Image     *string `json:"image"`
	Game      *string `json:"game"`
	Rank      *string `json:"rank"`
	Platform  *string `json:"platform"`
	Playstyle *string `json:"playstyle"`
	Region    *string `json:"region"`
}

// FromUserSlice converts the matched users into candidate results.
func (TeammateResult) FromUserSlice(users []*models.User) []*TeammateResult {
	results := make([]*TeammateResult, 0, len(users))
	for _, user := range users {
		results = append(results, &TeammateResult{
			ID:        user.ID,
			DiscordID: user.DiscordID,
			Name:      user.Name,
			Image:     user.Image,
			Game:      user.Game,
			Rank:      user.Rank,
			Platform:  user.Platform,
			Playstyle: user.Playstyle,
			Region:    user.Region,
		})
	}
	return results
}

// PastTeammate is one counterpart of a past teammate request, enriched with
// its rating aggregate.
type PastTeammate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Image       *string `json:"image"`
	AvgRating   float64 `json:"avgRating"`
	RatingCount int     `json:"ratingCount"`
}
