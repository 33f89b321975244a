package regions

// Simple package containing the region adjacency list.
// Separated from the matching logic to avoid import cycles.

// Region is the player selectable region.
type Region string

// Hand-authored adjacency: each region maps to itself plus its declared
// nearby regions. The mapping is not required to be symmetric.
var nearbyRegions = map[Region][]Region{
	"NA":    {"NA", "EU"},
	"EU":    {"EU", "NA"},
	"LATAM": {"LATAM"},
	"MENA":  {"MENA"},
	"APAC":  {"APAC", "OCE"},
	"OCE":   {"OCE", "APAC"},
}

// NearbyRegions returns the regions considered a match for the given one.
// Regions without a declared adjacency set match only themselves.
func NearbyRegions(region string) []string {
	nearby, exists := nearbyRegions[Region(region)]
	if !exists {
		return []string{region}
	}

	result := make([]string, len(nearby))
	for i, r := range nearby {
		result[i] = string(r)
	}

	return result
}
