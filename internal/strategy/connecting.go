package strategy

import (
	"fmt"

	"github.com/flightdeal/dealfinder/internal/booking"
	"github.com/flightdeal/dealfinder/internal/models"
)

// ConnectingExtractor is C5's fifth strategy: zero-cost, it mines a set of
// itineraries already in hand (the baseline response) for connecting
// options priced below the configured fraction of the cheapest direct
// price (spec.md §4.5). It issues no upstream calls.
func ConnectingExtractor(itineraries []models.Itinerary) []models.Deal {
	direct, ok := cheapestDirect(itineraries)
	if !ok {
		return nil
	}

	var deals []models.Deal
	for _, it := range itineraries {
		if !it.HasStops() {
			continue
		}
		if it.PriceUSD >= direct*ConnectingDiscount {
			continue
		}

		explanation := fmt.Sprintf("Connecting itinerary at $%.0f undercuts the cheapest direct fare of $%.0f", it.PriceUSD, direct)
		deals = append(deals, models.NewDeal(it, models.StrategyStandard, 20, booking.Link(it), explanation))
	}
	return deals
}

// cheapestDirect returns the lowest price among direct itineraries in the
// set, and whether one was found.
func cheapestDirect(itineraries []models.Itinerary) (float64, bool) {
	var best float64
	found := false
	for _, it := range itineraries {
		if !it.IsDirect() {
			continue
		}
		if !found || it.PriceUSD < best {
			best = it.PriceUSD
			found = true
		}
	}
	return best, found
}
