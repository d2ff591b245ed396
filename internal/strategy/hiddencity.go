package strategy

import (
	"context"
	"fmt"

	"github.com/flightdeal/dealfinder/internal/booking"
	"github.com/flightdeal/dealfinder/internal/budget"
	"github.com/flightdeal/dealfinder/internal/heuristics"
	"github.com/flightdeal/dealfinder/internal/models"
)

// HiddenCity is C5's fourth strategy: search past the query's destination
// to a beyond-city, then keep only itineraries that actually connect
// through the destination (spec.md §4.5). Every resulting deal violates
// airline ToS (no checked bags, one-way ticketing only), hence the risk
// floor of 60.
func HiddenCity(ctx context.Context, q models.Query, basePrice float64, caller *budget.Caller) []models.Deal {
	if basePrice < HiddenCityMinPrice {
		return nil
	}

	beyondCities := heuristics.SmartBeyondCities(q.Origin, q.Destination)
	if len(beyondCities) > HiddenCityMaxBeyondCities {
		beyondCities = beyondCities[:HiddenCityMaxBeyondCities]
	}

	var deals []models.Deal

	for _, beyond := range beyondCities {
		itineraries := caller.Call(ctx, q.Origin, beyond, q.Departure, returnPtr(q), q.Cabin, "hidden-city")

		for _, it := range itineraries {
			if !it.HasLayoverAt(q.Destination) {
				continue
			}
			if it.FinalDestination() == q.Destination {
				continue
			}

			explanation := fmt.Sprintf("Book %s→%s and disembark at %s; risk: non-refundable, carry-on only, one-way booking required",
				q.Origin, beyond, q.Destination)

			deal := models.NewDeal(it, models.StrategyHiddenCity, 60, booking.Link(it), explanation)
			deals = append(deals, deal)
		}
	}

	return deals
}
