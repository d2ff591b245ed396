package strategy

import (
	"context"
	"fmt"

	"github.com/flightdeal/dealfinder/internal/booking"
	"github.com/flightdeal/dealfinder/internal/budget"
	"github.com/flightdeal/dealfinder/internal/heuristics"
	"github.com/flightdeal/dealfinder/internal/models"
)

// NearbyAirport is C5's first strategy: substitute JFK for EWR, LAX for
// BUR, etc., on either end of the route, keeping only direct substitutes
// that beat the baseline by the configured discount (spec.md §4.5).
func NearbyAirport(ctx context.Context, q models.Query, basePrice float64, caller *budget.Caller) []models.Deal {
	if basePrice < NearbyAirportMinPrice {
		return nil
	}

	var deals []models.Deal

	for _, alt := range heuristics.NearbyAlternatives(q.Origin, basePrice) {
		itineraries := caller.Call(ctx, alt, q.Destination, q.Departure, returnPtr(q), q.Cabin, "nearby-airport")
		if deal, ok := nearbySubstituteDeal(itineraries, basePrice, alt, q.Origin, true); ok {
			deals = append(deals, deal)
		}
	}

	for _, alt := range heuristics.NearbyAlternatives(q.Destination, basePrice) {
		itineraries := caller.Call(ctx, q.Origin, alt, q.Departure, returnPtr(q), q.Cabin, "nearby-airport")
		if deal, ok := nearbySubstituteDeal(itineraries, basePrice, alt, q.Destination, false); ok {
			deals = append(deals, deal)
		}
	}

	return deals
}

// nearbySubstituteDeal picks the top itinerary per spec.md §4.5's
// "results[0] is the provider's preferred/best itinerary" convention,
// keeping it only if it is a direct flight priced below the discount
// threshold.
func nearbySubstituteDeal(itineraries []models.Itinerary, basePrice float64, substituted, original string, isOriginSwap bool) (models.Deal, bool) {
	if len(itineraries) == 0 {
		return models.Deal{}, false
	}
	top := itineraries[0]
	if !top.IsDirect() {
		return models.Deal{}, false
	}
	if top.PriceUSD >= basePrice*NearbyAirportDiscount {
		return models.Deal{}, false
	}

	savings := basePrice - top.PriceUSD
	pct := savingsPercent(basePrice, top.PriceUSD)

	var explanation string
	if isOriginSwap {
		explanation = fmt.Sprintf("Fly from %s instead of %s: save $%.0f (%d%%)", substituted, original, savings, pct)
	} else {
		explanation = fmt.Sprintf("Fly into %s instead of %s: save $%.0f (%d%%)", substituted, original, savings, pct)
	}

	deal := models.NewDeal(top, models.StrategyStandard, 10, booking.Link(top), explanation)
	return deal, true
}
