package strategy

import (
	"fmt"

	"github.com/flightdeal/dealfinder/internal/booking"
	"github.com/flightdeal/dealfinder/internal/models"
)

// BudgetAirlineFilter is C5's sixth strategy: zero-cost, it flags
// itineraries already in hand that are operated by a known low-cost
// carrier (spec.md §4.5), via case-insensitive substring match against
// BudgetAirlines.
func BudgetAirlineFilter(itineraries []models.Itinerary) []models.Deal {
	var deals []models.Deal
	for _, it := range itineraries {
		if !isBudgetAirline(it.Legs) {
			continue
		}
		explanation := fmt.Sprintf("Operated by a budget carrier: $%.0f", it.PriceUSD)
		deals = append(deals, models.NewDeal(it, models.StrategyStandard, 15, booking.Link(it), explanation))
	}
	return deals
}
