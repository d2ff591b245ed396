package analyzer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flightdeal/dealfinder/internal/models"
)

// jfkLocation is JFK's zone; constructing DepartAt directly in it means
// the local hour LocalHour computes back out matches the hour passed in,
// independent of the test's own notion of UTC offset or DST.
var jfkLocation = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}()

func leg(airline, flightNumber string, hour int) models.Leg {
	depart := time.Date(2026, 9, 1, hour, 0, 0, 0, jfkLocation)
	return models.Leg{Origin: "JFK", Destination: "LAX", Airline: airline, FlightNumber: flightNumber, DepartAt: depart}
}

func TestAnalyzeEmptyBaselineReturnsNothing(t *testing.T) {
	assert.Empty(t, Analyze(nil))
}

func TestAnalyzeRedEyeAndEarlyBird(t *testing.T) {
	itineraries := []models.Itinerary{
		{PriceUSD: 150, Legs: []models.Leg{leg("United", "UA1", 23)}},
		{PriceUSD: 160, Legs: []models.Leg{leg("United", "UA2", 7)}},
		{PriceUSD: 500, Legs: []models.Leg{leg("United", "UA3", 14)}},
	}

	deals := Analyze(itineraries)
	var redEyeCount, earlyBirdCount int
	for _, d := range deals {
		if d.RiskScore == redEyeRisk && d.PriceUSD == 150 {
			redEyeCount++
		}
		if d.RiskScore == earlyBirdRisk && d.PriceUSD == 160 {
			earlyBirdCount++
		}
	}
	assert.Equal(t, 1, redEyeCount)
	assert.Equal(t, 1, earlyBirdCount)
}

func TestAnalyzeLayoverWorthIt(t *testing.T) {
	direct := models.Itinerary{PriceUSD: 300, Legs: []models.Leg{leg("United", "UA1", 14)}}
	withLayover := models.Itinerary{
		PriceUSD: 250,
		Legs: []models.Leg{{
			Origin: "JFK", Destination: "LAX", Airline: "United", FlightNumber: "UA4", DepartAt: time.Date(2026, 9, 1, 14, 0, 0, 0, jfkLocation),
			Layovers: []models.Layover{{Airport: "ORD", DurationMin: 90}},
		}},
	}

	deals := Analyze([]models.Itinerary{direct, withLayover})
	found := false
	for _, d := range deals {
		// The same itinerary also yields a connecting deal; only the
		// layover deal carries the "worth it" verdict.
		if d.PriceUSD == 250 && strings.HasPrefix(d.Explanation, "Layover at") {
			found = true
			assert.Contains(t, d.Explanation, "worth it")
		}
	}
	assert.True(t, found)
}

func TestAnalyzeBudgetCarrier(t *testing.T) {
	itineraries := []models.Itinerary{
		{PriceUSD: 90, Legs: []models.Leg{leg("Spirit Airlines", "NK1", 14)}},
	}
	deals := Analyze(itineraries)
	assertHasDeal(t, deals, 90, budgetRisk)
}

func TestAnalyzeConnectingDeal(t *testing.T) {
	direct := models.Itinerary{PriceUSD: 300, Legs: []models.Leg{leg("United", "UA1", 14)}}
	connecting := models.Itinerary{
		PriceUSD: 260,
		Legs: []models.Leg{{
			Origin: "JFK", Destination: "LAX", Airline: "United", FlightNumber: "UA5", DepartAt: time.Date(2026, 9, 1, 14, 0, 0, 0, jfkLocation),
			Layovers: []models.Layover{{Airport: "DEN", DurationMin: 300}},
		}},
	}
	deals := Analyze([]models.Itinerary{direct, connecting})
	assertHasDeal(t, deals, 260, connectingRisk)
}

func TestAnalyzeDeduplicatesByAirlineFlightAndDepartAt(t *testing.T) {
	dup1 := models.Itinerary{PriceUSD: 100, Legs: []models.Leg{leg("United", "UA1", 23)}}
	dup2 := models.Itinerary{PriceUSD: 110, Legs: []models.Leg{leg("United", "UA1", 23)}}

	deals := Analyze([]models.Itinerary{dup1, dup2})
	count := 0
	for _, d := range deals {
		if d.RiskScore == redEyeRisk {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func assertHasDeal(t *testing.T, deals []models.Deal, price float64, risk int) {
	t.Helper()
	for _, d := range deals {
		if d.PriceUSD == price && d.RiskScore == risk {
			return
		}
	}
	t.Fatalf("expected a deal with price %.0f and risk %d", price, risk)
}
