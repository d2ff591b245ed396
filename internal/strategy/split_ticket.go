package strategy

import (
	"context"
	"fmt"
	"sync"

	"github.com/flightdeal/dealfinder/internal/booking"
	"github.com/flightdeal/dealfinder/internal/budget"
	"github.com/flightdeal/dealfinder/internal/heuristics"
	"github.com/flightdeal/dealfinder/internal/models"
)

// SplitTicket is C5's second strategy: book origin→hub and hub→destination
// as two independent itineraries, issuing both legs concurrently per hub
// (spec.md §4.5). Carries no cancellation protection if either leg is
// disrupted, hence the elevated risk score.
func SplitTicket(ctx context.Context, q models.Query, basePrice float64, caller *budget.Caller) []models.Deal {
	if basePrice < SplitTicketMinPrice {
		return nil
	}

	var deals []models.Deal

	for _, hub := range heuristics.SmartHubs(q.Origin, q.Destination, basePrice) {
		leg1, leg2 := splitLegsParallel(ctx, q, hub, caller)

		firstLeg, ok1 := cheapest(leg1)
		secondLeg, ok2 := cheapest(leg2)
		if !ok1 || !ok2 {
			continue
		}

		total := firstLeg.PriceUSD + secondLeg.PriceUSD
		if total >= basePrice*SplitTicketDiscount {
			continue
		}

		explanation := fmt.Sprintf("Book %s→%s and %s→%s separately through %s: total $%.0f vs $%.0f direct",
			q.Origin, hub, hub, q.Destination, hub, total, basePrice)

		deal := models.NewMultiItineraryDeal(models.StrategyStandard, 40,
			[]models.Itinerary{firstLeg, secondLeg}, booking.Link(firstLeg), explanation)
		deals = append(deals, deal)
	}

	return deals
}

// splitLegsParallel issues the two hub legs concurrently, the same
// scatter-gather shape every multi-leg strategy in this package uses.
func splitLegsParallel(ctx context.Context, q models.Query, hub string, caller *budget.Caller) ([]models.Itinerary, []models.Itinerary) {
	var wg sync.WaitGroup
	var leg1, leg2 []models.Itinerary

	wg.Add(2)
	go func() {
		defer wg.Done()
		leg1 = caller.Call(ctx, q.Origin, hub, q.Departure, nil, q.Cabin, "split-ticket-leg1")
	}()
	go func() {
		defer wg.Done()
		leg2 = caller.Call(ctx, hub, q.Destination, q.Departure, nil, q.Cabin, "split-ticket-leg2")
	}()
	wg.Wait()

	return leg1, leg2
}
