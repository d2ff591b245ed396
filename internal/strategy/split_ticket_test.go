package strategy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightdeal/dealfinder/internal/budget"
	"github.com/flightdeal/dealfinder/internal/models"
	"github.com/flightdeal/dealfinder/internal/source"
)

func TestSplitTicketBelowThresholdReturnsNothing(t *testing.T) {
	mock := source.NewMock()
	caller := budget.New(mock, budget.NewTracker(10), nil)
	q := models.Query{Origin: "JFK", Destination: "LAX", Departure: time.Now().AddDate(0, 0, 10)}

	assert.Empty(t, SplitTicket(context.Background(), q, 89, caller))
}

func TestSplitTicketEmitsTwoItineraryDealWhenCheaper(t *testing.T) {
	mock := source.NewMock()
	mock.AddRoute("JFK", "DEN", models.Itinerary{PriceUSD: 150, Legs: []models.Leg{{Origin: "JFK", Destination: "DEN", Airline: "United", FlightNumber: "UA1"}}})
	mock.AddRoute("DEN", "LAX", models.Itinerary{PriceUSD: 180, Legs: []models.Leg{{Origin: "DEN", Destination: "LAX", Airline: "United", FlightNumber: "UA2"}}})

	caller := budget.New(mock, budget.NewTracker(10), nil)
	q := models.Query{Origin: "JFK", Destination: "LAX", Departure: time.Now().AddDate(0, 0, 10)}

	deals := SplitTicket(context.Background(), q, 400, caller)
	require.NotEmpty(t, deals)
	assert.Equal(t, 330.0, deals[0].PriceUSD)
	assert.Len(t, deals[0].Itineraries, 2)
	assert.Equal(t, 40, deals[0].RiskScore)
}

func TestSplitTicketRejectsInsufficientSavings(t *testing.T) {
	mock := source.NewMock()
	mock.AddRoute("JFK", "DEN", models.Itinerary{PriceUSD: 200, Legs: []models.Leg{{Origin: "JFK", Destination: "DEN"}}})
	mock.AddRoute("DEN", "LAX", models.Itinerary{PriceUSD: 200, Legs: []models.Leg{{Origin: "DEN", Destination: "LAX"}}})

	caller := budget.New(mock, budget.NewTracker(10), nil)
	q := models.Query{Origin: "JFK", Destination: "LAX", Departure: time.Now().AddDate(0, 0, 10)}

	deals := SplitTicket(context.Background(), q, 400, caller)
	assert.Empty(t, deals)
}
