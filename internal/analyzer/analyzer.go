// Package analyzer implements the Data Analyser (C6): a single O(n) pass
// over the baseline itinerary list that needs no further upstream calls.
package analyzer

import (
	"fmt"
	"sort"

	"github.com/flightdeal/dealfinder/internal/booking"
	"github.com/flightdeal/dealfinder/internal/models"
	"github.com/flightdeal/dealfinder/internal/strategy"
	"github.com/flightdeal/dealfinder/internal/timezone"
)

const (
	redEyeRisk    = 5
	earlyBirdRisk = 5
	layoverRisk   = 10
	budgetRisk    = 15
	connectingRisk = 10

	layoverWorthItThreshold  = 30.0
	layoverWorthItMaxMinutes = 240
	connectingDealThreshold  = 20.0
)

// Analyze runs spec.md §4.6's five categories over the baseline itinerary
// set: red-eye, early-bird, layover, budget-carrier, connecting-deal.
// Itineraries are deduplicated by (airline, flightNumber, departAt) before
// categorisation. Output within each category is sorted ascending by
// price; the categories are concatenated in the order above.
func Analyze(baseline []models.Itinerary) []models.Deal {
	deduped := dedupe(baseline)
	if len(deduped) == 0 {
		return nil
	}

	avgPrice := averageTopN(deduped, 5)
	cheapestDirect := cheapestDirectPrice(deduped)

	var redEye, earlyBird, layover, budgetCarrier, connecting []models.Deal

	for _, it := range deduped {
		hour := firstDepartHour(it)

		if isRedEye(hour) {
			redEye = append(redEye, redEyeDeal(it, avgPrice))
		}
		if isEarlyBird(hour) {
			earlyBird = append(earlyBird, earlyBirdDeal(it))
		}
		if layoverAirport, duration, ok := firstLayover(it); ok {
			layover = append(layover, layoverDeal(it, layoverAirport, duration, cheapestDirect))
		}
		if strategy.IsBudgetAirline(it.Legs) {
			budgetCarrier = append(budgetCarrier, budgetCarrierDeal(it))
		}
		if it.HasStops() && cheapestDirect-it.PriceUSD > connectingDealThreshold {
			connecting = append(connecting, connectingDeal(it, cheapestDirect))
		}
	}

	sortByPrice(redEye)
	sortByPrice(earlyBird)
	sortByPrice(layover)
	sortByPrice(budgetCarrier)
	sortByPrice(connecting)

	var out []models.Deal
	out = append(out, redEye...)
	out = append(out, earlyBird...)
	out = append(out, layover...)
	out = append(out, budgetCarrier...)
	out = append(out, connecting...)
	return out
}

func dedupe(itineraries []models.Itinerary) []models.Itinerary {
	seen := make(map[string]bool, len(itineraries))
	out := make([]models.Itinerary, 0, len(itineraries))
	for _, it := range itineraries {
		key := dedupeKey(it)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}

func dedupeKey(it models.Itinerary) string {
	if len(it.Legs) == 0 {
		return ""
	}
	first := it.Legs[0]
	return first.Airline + "|" + first.FlightNumber + "|" + first.DepartAt.Format("2006-01-02T15:04")
}

func firstDepartHour(it models.Itinerary) int {
	if len(it.Legs) == 0 {
		return -1
	}
	leg := it.Legs[0]
	return timezone.LocalHour(leg.DepartAt, leg.Origin)
}

func isRedEye(hour int) bool {
	return (hour >= 22 && hour <= 23) || (hour >= 0 && hour <= 5)
}

func isEarlyBird(hour int) bool {
	return hour >= 6 && hour <= 8
}

func firstLayover(it models.Itinerary) (string, int, bool) {
	for _, leg := range it.Legs {
		if len(leg.Layovers) > 0 {
			return leg.Layovers[0].Airport, leg.Layovers[0].DurationMin, true
		}
	}
	return "", 0, false
}

func averageTopN(itineraries []models.Itinerary, n int) float64 {
	prices := make([]float64, len(itineraries))
	for i, it := range itineraries {
		prices[i] = it.PriceUSD
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(prices)))
	if n > len(prices) {
		n = len(prices)
	}
	if n == 0 {
		return 0
	}
	var sum float64
	for _, p := range prices[:n] {
		sum += p
	}
	return sum / float64(n)
}

func cheapestDirectPrice(itineraries []models.Itinerary) float64 {
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
	if !found {
		return cheapestPrice(itineraries)
	}
	return best
}

func cheapestPrice(itineraries []models.Itinerary) float64 {
	var best float64
	found := false
	for _, it := range itineraries {
		if !found || it.PriceUSD < best {
			best = it.PriceUSD
			found = true
		}
	}
	return best
}

func redEyeDeal(it models.Itinerary, avgPrice float64) models.Deal {
	explanation := "Red-eye departure"
	if avgPrice-it.PriceUSD > 5 {
		explanation = fmt.Sprintf("Red-eye departure: save $%.0f vs. average", avgPrice-it.PriceUSD)
	}
	return models.NewDeal(it, models.StrategyStandard, redEyeRisk, booking.Link(it), explanation)
}

func earlyBirdDeal(it models.Itinerary) models.Deal {
	return models.NewDeal(it, models.StrategyStandard, earlyBirdRisk, booking.Link(it), "Early-bird departure")
}

func layoverDeal(it models.Itinerary, airport string, durationMin int, cheapestDirect float64) models.Deal {
	explanation := fmt.Sprintf("Layover at %s (%d min)", airport, durationMin)
	if cheapestDirect-it.PriceUSD > layoverWorthItThreshold && durationMin < layoverWorthItMaxMinutes {
		explanation = fmt.Sprintf("Layover at %s (%d min): worth it, saves $%.0f vs. direct", airport, durationMin, cheapestDirect-it.PriceUSD)
	}
	return models.NewDeal(it, models.StrategyStandard, layoverRisk, booking.Link(it), explanation)
}

func budgetCarrierDeal(it models.Itinerary) models.Deal {
	explanation := fmt.Sprintf("Budget carrier fare $%.0f: expect seat, bag, and change fees", it.PriceUSD)
	return models.NewDeal(it, models.StrategyStandard, budgetRisk, booking.Link(it), explanation)
}

func connectingDeal(it models.Itinerary, cheapestDirect float64) models.Deal {
	pct := 0
	if cheapestDirect > 0 {
		pct = int((cheapestDirect - it.PriceUSD) / cheapestDirect * 100)
	}
	explanation := fmt.Sprintf("Connecting itinerary: save %d%% vs. cheapest direct", pct)
	return models.NewDeal(it, models.StrategyStandard, connectingRisk, booking.Link(it), explanation)
}

func sortByPrice(deals []models.Deal) {
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].PriceUSD < deals[j].PriceUSD
	})
}
