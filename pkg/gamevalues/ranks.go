package gamevalues

import (
	"strings"
)

// Ordered rank ladders for each supported game, lowest tier first.
var rankLadders = map[string][]string{
	"apex":     {"Bronze", "Silver", "Gold", "Platinum", "Diamond", "Master", "Apex Predator"},
	"fortnite": {"Bronze", "Silver", "Gold", "Platinum", "Diamond", "Elite", "Champion", "Unreal"},
}

// NearbyRanks returns the lowercased rank tiers considered a skill match for
// the given rank on the given game: the tier itself plus its immediate
// neighbors on the ladder, clamped at both ends.
// Unknown games or ranks outside the ladder fall back to the literal rank.
func NearbyRanks(game string, rank string) []string {
	rank = strings.ToLower(strings.TrimSpace(rank))
	if rank == "" {
		return nil
	}

	ladder, exists := rankLadders[game]
	if !exists {
		return []string{rank}
	}

	// Find the requested tier on the ladder.
	idx := -1
	for i, tier := range ladder {
		if strings.ToLower(tier) == rank {
			idx = i
			break
		}
	}

	if idx == -1 {
		return []string{rank}
	}

	start := max(0, idx-1)
	end := min(len(ladder), idx+2)

	nearby := make([]string, 0, end-start)
	for _, tier := range ladder[start:end] {
		nearby = append(nearby, strings.ToLower(tier))
	}

	return nearby
}
