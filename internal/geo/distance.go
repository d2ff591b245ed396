package geo

import "math"

// earthRadiusMiles is the mean Earth radius spec.md §4.1 specifies.
const earthRadiusMiles = 3959.0

// defaultDistanceMiles is the conservative fallback spec.md §4.1 mandates
// when either airport code is unknown.
const defaultDistanceMiles = 1000.0

// majorHubs is the fixed candidate set optimalHubs ranks from.
var majorHubs = []string{"ORD", "ATL", "DFW", "DEN", "IAH", "SFO", "LAX", "JFK", "EWR"}

// Distance returns the great-circle distance in miles between two airport
// codes using the Haversine formula. Unknown codes degrade silently to
// defaultDistanceMiles — they must never panic or error.
func Distance(a, b string) float64 {
	airportA, okA := Lookup(a)
	airportB, okB := Lookup(b)
	if !okA || !okB {
		return defaultDistanceMiles
	}
	return haversineMiles(airportA.Lat, airportA.Lon, airportB.Lat, airportB.Lon)
}

func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad

	lat1r := lat1 * rad
	lat2r := lat2 * rad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// RouteType is domestic or international.
type RouteType string

const (
	Domestic      RouteType = "domestic"
	International RouteType = "international"
)

// ClassifyRoute returns Domestic if both airports are known and share a
// country, International otherwise. Unknown codes default to Domestic per
// spec.md §4.1.
func ClassifyRoute(a, b string) RouteType {
	airportA, okA := Lookup(a)
	airportB, okB := Lookup(b)
	if !okA || !okB {
		return Domestic
	}
	if airportA.Country == airportB.Country {
		return Domestic
	}
	return International
}

// OptimalHubs ranks majorHubs by ascending detour cost
// (distance(a,hub)+distance(hub,b)-distance(a,b)) and returns the top 3,
// excluding a and b themselves.
func OptimalHubs(a, b string) []string {
	direct := Distance(a, b)

	type scored struct {
		hub   string
		score float64
	}

	var candidates []scored
	for _, hub := range majorHubs {
		if hub == a || hub == b {
			continue
		}
		detour := Distance(a, hub) + Distance(hub, b) - direct
		candidates = append(candidates, scored{hub: hub, score: detour})
	}

	// Simple insertion sort: the candidate set is always <= 9 elements.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].score < candidates[j-1].score; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	limit := 3
	if len(candidates) < limit {
		limit = len(candidates)
	}

	hubs := make([]string, limit)
	for i := 0; i < limit; i++ {
		hubs[i] = candidates[i].hub
	}
	return hubs
}
