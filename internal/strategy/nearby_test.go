package strategy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flightdeal/dealfinder/internal/budget"
	"github.com/flightdeal/dealfinder/internal/models"
	"github.com/flightdeal/dealfinder/internal/source"
)

func TestNearbyAirportBelowThresholdReturnsNothing(t *testing.T) {
	mock := source.NewMock()
	caller := budget.New(mock, budget.NewTracker(10), nil)
	q := models.Query{Origin: "JFK", Destination: "LAX", Departure: time.Now().AddDate(0, 0, 10)}

	deals := NearbyAirport(context.Background(), q, 69, caller)
	assert.Empty(t, deals)
}

func TestNearbyAirportFindsCheaperDirectSubstitute(t *testing.T) {
	mock := source.NewMock()
	mock.AddRoute("EWR", "LAX", models.Itinerary{
		PriceUSD: 150,
		Legs:     []models.Leg{{Origin: "EWR", Destination: "LAX", Airline: "JetBlue", FlightNumber: "B6100"}},
	})
	caller := budget.New(mock, budget.NewTracker(10), nil)
	q := models.Query{Origin: "JFK", Destination: "LAX", Departure: time.Now().AddDate(0, 0, 10)}

	deals := NearbyAirport(context.Background(), q, 200, caller)
	assert.NotEmpty(t, deals)
	assert.Equal(t, models.StrategyStandard, deals[0].Strategy)
	assert.Equal(t, 150.0, deals[0].PriceUSD)
	assert.LessOrEqual(t, deals[0].RiskScore, 10)
}

func TestNearbyAirportRejectsConnectingSubstitute(t *testing.T) {
	mock := source.NewMock()
	mock.AddRoute("EWR", "LAX", models.Itinerary{
		PriceUSD: 100,
		Legs: []models.Leg{{
			Origin: "EWR", Destination: "LAX", Airline: "JetBlue", FlightNumber: "B6100",
			Layovers: []models.Layover{{Airport: "ORD", DurationMin: 60}},
		}},
	})
	caller := budget.New(mock, budget.NewTracker(10), nil)
	q := models.Query{Origin: "JFK", Destination: "LAX", Departure: time.Now().AddDate(0, 0, 10)}

	deals := NearbyAirport(context.Background(), q, 200, caller)
	assert.Empty(t, deals)
}

func TestNearbyAirportRejectsInsufficientSavings(t *testing.T) {
	mock := source.NewMock()
	mock.AddRoute("EWR", "LAX", models.Itinerary{
		PriceUSD: 195,
		Legs:     []models.Leg{{Origin: "EWR", Destination: "LAX", Airline: "JetBlue", FlightNumber: "B6100"}},
	})
	caller := budget.New(mock, budget.NewTracker(10), nil)
	q := models.Query{Origin: "JFK", Destination: "LAX", Departure: time.Now().AddDate(0, 0, 10)}

	deals := NearbyAirport(context.Background(), q, 200, caller)
	assert.Empty(t, deals)
}
