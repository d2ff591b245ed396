// Package booking generates Deal.bookingLink: an absolute, URL-encoded
// link a user can follow to actually book the itinerary (SPEC_FULL.md
// §4.9). No teacher equivalent carries a booking link at all; the
// "google_flights_url" field shape in the pack's agisilaos-gflight model
// is the closest grounding for a universal fallback search URL.
package booking

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/flightdeal/dealfinder/internal/models"
)

// carrierURLTemplates maps an airline's case-folded name (substring
// match, same convention as strategy.IsBudgetAirline) to a deep-link
// template accepting origin, destination, and date.
var carrierURLTemplates = map[string]string{
	"united":   "https://www.united.com/ual/en/us/flight-search/book-a-flight/results/rev?f=%s&t=%s&d=%s",
	"american": "https://www.aa.com/booking/find-flights?from=%s&to=%s&date=%s",
	"delta":    "https://www.delta.com/flight-search/book-a-flight?from=%s&to=%s&date=%s",
	"southwest": "https://www.southwest.com/air/booking/index.html?originationAirportCode=%s&destinationAirportCode=%s&departureDate=%s",
	"jetblue":  "https://www.jetblue.com/booking/flights?from=%s&to=%s&depart=%s",
	"alaska":   "https://www.alaskaair.com/booking/reservation-search?A1=&origin=%s&destination=%s&departureDate=%s",
	"spirit":   "https://www.spirit.com/book/flights?origin=%s&destination=%s&date=%s",
	"frontier": "https://booking.flyfrontier.com/Flight/InternalSelect?o1=%s&d1=%s&dd1=%s",
}

// universalFallbackURL is used when no carrier template matches.
const universalFallbackURL = "https://www.google.com/travel/flights?q=%s"

// Link generates a Deal's bookingLink with the 3-tier priority
// SPEC_FULL.md §4.9 specifies: (1) provider booking token, (2)
// carrier-specific deep link, (3) universal fallback.
func Link(itinerary models.Itinerary) string {
	if itinerary.BookingToken != "" {
		return tokenURL(itinerary.BookingToken)
	}
	if len(itinerary.Legs) > 0 {
		if template, airline, ok := carrierTemplate(itinerary.Legs[0].Airline); ok {
			return carrierURL(template, itinerary.Legs[0], airline)
		}
	}
	return fallbackURL(itinerary)
}

func tokenURL(token string) string {
	v := url.Values{}
	v.Set("token", token)
	return "https://booking.flightdeal.example/confirm?" + v.Encode()
}

func carrierTemplate(airline string) (string, string, bool) {
	folded := strings.ToLower(airline)
	for carrier, template := range carrierURLTemplates {
		if strings.Contains(folded, carrier) {
			return template, carrier, true
		}
	}
	return "", "", false
}

func carrierURL(template string, leg models.Leg, _ string) string {
	origin := url.QueryEscape(leg.Origin)
	destination := url.QueryEscape(leg.Destination)
	date := url.QueryEscape(leg.DepartAt.Format("2006-01-02"))
	return fmt.Sprintf(template, origin, destination, date)
}

func fallbackURL(itinerary models.Itinerary) string {
	if len(itinerary.Legs) == 0 {
		return fmt.Sprintf(universalFallbackURL, url.QueryEscape("flights"))
	}
	leg := itinerary.Legs[0]
	query := fmt.Sprintf("flights from %s to %s on %s", leg.Origin, leg.Destination, leg.DepartAt.Format("2006-01-02"))
	return fmt.Sprintf(universalFallbackURL, url.QueryEscape(query))
}
