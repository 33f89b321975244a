package filters

import (
	"squadup/pkg/gamevalues"
	"squadup/pkg/regions"
	"strings"
)

// TeammateSearchParams are the query parameters for the teammate search.
// Absent fields leave that dimension unconstrained.
type TeammateSearchParams struct {
	Game      string `form:"game"`
	Rank      string `form:"rank"`
	Platform  string `form:"platform"`
	Playstyle string `form:"playstyle"`
	Region    string `form:"region"`
}

// TeammateSearchFilter is the resolved filter applied against storage.
// Rank and region are already widened to their neighbor sets.
type TeammateSearchFilter struct {
	ExcludeDiscordID string
	Game             string
	Ranks            []string
	Platform         string
	Playstyle        string
	Regions          []string
}

// NewTeammateSearchFilter resolves the raw params into a storage filter for
// the given requester, widening rank to adjacent tiers and region to its
// declared nearby set.
func NewTeammateSearchFilter(params TeammateSearchParams, requesterDiscordID string) *TeammateSearchFilter {
	filter := &TeammateSearchFilter{
		ExcludeDiscordID: requesterDiscordID,
		Game:             strings.TrimSpace(params.Game),
		Platform:         strings.TrimSpace(params.Platform),
		Playstyle:        strings.TrimSpace(params.Playstyle),
	}

	if rank := strings.TrimSpace(params.Rank); rank != "" {
		filter.Ranks = gamevalues.NearbyRanks(filter.Game, rank)
	}

	if region := strings.TrimSpace(params.Region); region != "" {
		filter.Regions = regions.NearbyRegions(region)
	}

	return filter
}
