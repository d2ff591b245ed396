package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flightdeal/dealfinder/internal/models"
)

func TestLinkPrefersBookingToken(t *testing.T) {
	it := models.Itinerary{BookingToken: "abc123", Legs: []models.Leg{{Airline: "United"}}}
	link := Link(it)
	assert.Contains(t, link, "token=abc123")
}

func TestLinkFallsBackToCarrierTemplate(t *testing.T) {
	it := models.Itinerary{
		Legs: []models.Leg{{Origin: "JFK", Destination: "LAX", Airline: "United Airlines", DepartAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}},
	}
	link := Link(it)
	assert.Contains(t, link, "united.com")
	assert.Contains(t, link, "JFK")
	assert.Contains(t, link, "LAX")
}

func TestLinkFallsBackToUniversalSearch(t *testing.T) {
	it := models.Itinerary{
		Legs: []models.Leg{{Origin: "JFK", Destination: "LAX", Airline: "Unknown Air", DepartAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}},
	}
	link := Link(it)
	assert.Contains(t, link, "google.com/travel/flights")
}

func TestLinkHandlesEmptyItinerary(t *testing.T) {
	link := Link(models.Itinerary{})
	assert.Contains(t, link, "google.com/travel/flights")
}
