// Package heuristics implements the pure, no-I/O selector functions
// (component C4) that decide which alternative airports, hubs, beyond
// cities, and positioning cities to probe — parameterised only by the
// baseline price and route geography, per spec.md §4.4.
package heuristics

import "github.com/flightdeal/dealfinder/internal/geo"

// nearbyAlternativesTable is the static substitution map spec.md §4.4 names.
var nearbyAlternativesTable = map[string][]string{
	"JFK": {"EWR", "LGA"},
	"EWR": {"JFK", "LGA"},
	"LGA": {"JFK", "EWR"},
	"LAX": {"BUR", "ONT", "LGB", "SNA"},
	"SFO": {"OAK", "SJC"},
	"ORD": {"MDW"},
	"IAD": {"DCA", "BWI"},
	"MIA": {"FLL", "PBI"},
}

// NearbyAlternatives returns alternate airports for code, trimmed to a
// basePrice-scaled count: 1 below $100, 2 below $200, all otherwise.
func NearbyAlternatives(code string, basePrice float64) []string {
	all := nearbyAlternativesTable[code]
	if len(all) == 0 {
		return nil
	}

	var limit int
	switch {
	case basePrice < 100:
		limit = 1
	case basePrice < 200:
		limit = 2
	default:
		limit = len(all)
	}
	if limit > len(all) {
		limit = len(all)
	}

	out := make([]string, limit)
	copy(out, all[:limit])
	return out
}

var eastCoast = map[string]bool{"JFK": true, "EWR": true, "LGA": true, "BOS": true, "DCA": true, "PHL": true}
var westCoast = map[string]bool{"LAX": true, "SFO": true, "SEA": true, "PDX": true, "SAN": true}

func isEastToWest(origin, destination string) bool {
	return eastCoast[origin] && westCoast[destination]
}

func isWestToEast(origin, destination string) bool {
	return westCoast[origin] && eastCoast[destination]
}

// smartHubCandidates is the ordered fallback list for routes that are
// neither coast-to-coast pattern.
var smartHubCandidates = []string{"ORD", "ATL", "DFW", "DEN", "LAX", "SFO", "JFK", "MIA"}

// SmartHubs returns candidate connecting hubs for a split-ticket search.
// Empty below $120 (spec.md §4.4). Coast-to-coast routes get a single
// geographically sensible hub; international routes get none; everything
// else gets the first non-endpoint candidate from smartHubCandidates.
func SmartHubs(origin, destination string, basePrice float64) []string {
	if basePrice < 120 {
		return nil
	}
	if geo.ClassifyRoute(origin, destination) == geo.International {
		return nil
	}

	if isEastToWest(origin, destination) {
		return []string{"DEN"}
	}
	if isWestToEast(origin, destination) {
		return []string{"ORD"}
	}

	for _, hub := range smartHubCandidates {
		if hub != origin && hub != destination {
			return []string{hub}
		}
	}
	return nil
}

// beyondCitiesByDestination is the destination-keyed fallback table for
// non-coast-to-coast hidden-city candidate searches.
var beyondCitiesByDestination = map[string][]string{
	"LAX": {"SFO", "SAN"},
	"SFO": {"LAX", "SEA"},
	"JFK": {"BOS", "PHL"},
	"MIA": {"FLL", "PBI"},
	"ORD": {"MDW", "DFW"},
}

// SmartBeyondCities returns candidate "beyond" destinations to search past
// the query's actual destination, for hidden-city discovery.
func SmartBeyondCities(origin, destination string) []string {
	if geo.ClassifyRoute(origin, destination) == geo.International {
		return nil
	}

	if isEastToWest(origin, destination) {
		candidates := []string{"DEN", "ORD", "DFW"}
		out := make([]string, 0, 2)
		for _, c := range candidates {
			if c == origin || c == destination {
				continue
			}
			out = append(out, c)
			if len(out) == 2 {
				break
			}
		}
		return out
	}

	all := beyondCitiesByDestination[destination]
	if len(all) == 0 {
		return nil
	}
	limit := 2
	if limit > len(all) {
		limit = len(all)
	}
	out := make([]string, limit)
	copy(out, all[:limit])
	return out
}

// ShouldCheckPositioning gates the positioning-flight strategy.
func ShouldCheckPositioning(basePrice float64) bool {
	return basePrice > 300
}

// ShouldCheckHiddenCity gates the hidden-city strategy.
func ShouldCheckHiddenCity(basePrice float64) bool {
	return basePrice > 100
}
