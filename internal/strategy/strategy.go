// Package strategy implements the six discovery heuristics (component
// C5). Every strategy is a pure function of (Query, basePrice,
// *budget.Caller) — no shared state, no strategy-local goroutine pools
// beyond what a single call needs — so the orchestrator can run them
// concurrently with nothing more than a WaitGroup and a channel, the same
// shape as the teacher's aggregator.Search fan-out.
package strategy

import (
	"math"
	"strings"
	"time"

	"github.com/flightdeal/dealfinder/internal/models"
)

// Thresholds and discount ratios, centralised per spec.md §9's
// instruction that these be first-class configuration, not scattered
// magic numbers.
const (
	NearbyAirportMinPrice   = 70.0
	SplitTicketMinPrice     = 90.0
	PositioningMinPrice     = 300.0
	HiddenCityMinPrice      = 100.0
	SmartHubMinPrice        = 120.0

	NearbyAirportDiscount = 0.85
	SplitTicketDiscount   = 0.85
	PositioningDiscount   = 0.75
	ConnectingDiscount    = 0.90

	HiddenCityMaxBeyondCities = 5
)

// BudgetAirlines is the static case-insensitive substring list spec.md
// §4.5 names for the budget-airline filter and §4.6 for the analyser's
// budget-carrier detection.
var BudgetAirlines = []string{"Spirit", "Frontier", "Allegiant", "Sun Country", "Southwest", "JetBlue", "Breeze"}

// positioningCandidateCities is the static small set spec.md §4.5 names
// for the positioning-flight strategy.
var positioningCandidateCities = []string{"FLL", "MIA"}

// savingsPercent rounds the percentage saved off basePrice, spec.md §4.5's
// "round(savings/basePrice · 100)".
func savingsPercent(basePrice, altPrice float64) int {
	if basePrice <= 0 {
		return 0
	}
	return int(math.Round((basePrice - altPrice) / basePrice * 100))
}

// cheapest returns the lowest-priced itinerary in the slice, and whether
// the slice was non-empty.
func cheapest(itineraries []models.Itinerary) (models.Itinerary, bool) {
	if len(itineraries) == 0 {
		return models.Itinerary{}, false
	}
	best := itineraries[0]
	for _, it := range itineraries[1:] {
		if it.PriceUSD < best.PriceUSD {
			best = it
		}
	}
	return best, true
}

// IsBudgetAirline reports whether any leg's airline matches the static
// budget-carrier list, case-insensitively, by substring. Exported so the
// analyser (C6) can reuse the same carrier list for its own budget-carrier
// category.
func IsBudgetAirline(legs []models.Leg) bool {
	return isBudgetAirline(legs)
}

func isBudgetAirline(legs []models.Leg) bool {
	for _, leg := range legs {
		for _, carrier := range BudgetAirlines {
			if strings.Contains(strings.ToLower(leg.Airline), strings.ToLower(carrier)) {
				return true
			}
		}
	}
	return false
}

// returnPtr converts a Query's zero-or-set Return field into the
// *time.Time shape budget.Caller.Call expects (nil means one-way).
func returnPtr(q models.Query) *time.Time {
	if q.Return.IsZero() {
		return nil
	}
	ret := q.Return
	return &ret
}
