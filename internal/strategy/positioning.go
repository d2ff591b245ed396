package strategy

import (
	"context"
	"fmt"
	"sync"

	"github.com/flightdeal/dealfinder/internal/booking"
	"github.com/flightdeal/dealfinder/internal/budget"
	"github.com/flightdeal/dealfinder/internal/models"
)

// Positioning is C5's third strategy: hop to a cheap-departure city the day
// before, then fly the main leg on the query's actual date (spec.md §4.5).
// Risk is elevated (~50): a missed positioning leg strands the main leg.
func Positioning(ctx context.Context, q models.Query, basePrice float64, caller *budget.Caller) []models.Deal {
	if basePrice < PositioningMinPrice {
		return nil
	}

	var deals []models.Deal

	for _, city := range positioningCandidateCities {
		if city == q.Origin || city == q.Destination {
			continue
		}

		positioningLegs, mainLegs := positioningLegsParallel(ctx, q, city, caller)

		positioningLeg, ok1 := cheapest(positioningLegs)
		mainLeg, ok2 := cheapest(mainLegs)
		if !ok1 || !ok2 {
			continue
		}

		total := positioningLeg.PriceUSD + mainLeg.PriceUSD
		if total >= basePrice*PositioningDiscount {
			continue
		}

		explanation := fmt.Sprintf("Position to %s a day early, then fly %s→%s: total $%.0f vs $%.0f direct",
			city, city, q.Destination, total, basePrice)

		deal := models.NewMultiItineraryDeal(models.StrategyStandard, 50,
			[]models.Itinerary{positioningLeg, mainLeg}, booking.Link(positioningLeg), explanation)
		deals = append(deals, deal)
	}

	return deals
}

func positioningLegsParallel(ctx context.Context, q models.Query, city string, caller *budget.Caller) ([]models.Itinerary, []models.Itinerary) {
	var wg sync.WaitGroup
	var positioningLegs, mainLegs []models.Itinerary
	priorDay := q.Departure.AddDate(0, 0, -1)

	wg.Add(2)
	go func() {
		defer wg.Done()
		positioningLegs = caller.Call(ctx, q.Origin, city, priorDay, nil, q.Cabin, "positioning-leg")
	}()
	go func() {
		defer wg.Done()
		mainLegs = caller.Call(ctx, city, q.Destination, q.Departure, nil, q.Cabin, "positioning-main")
	}()
	wg.Wait()

	return positioningLegs, mainLegs
}
