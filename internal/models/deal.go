package models

import (
	"github.com/google/uuid"

	"github.com/flightdeal/dealfinder/pkg/currency"
)

// Strategy identifies which heuristic discovered a Deal.
type Strategy string

const (
	StrategyStandard   Strategy = "standard"
	StrategyHiddenCity Strategy = "hidden-city"

	// StrategyAward, StrategyError, StrategyCurrency, and StrategyThrowaway
	// are part of the public enum for wire compatibility, but no code path
	// in this repository produces them — see DESIGN.md "Open Question
	// decisions". Do not infer behavior for these.
	StrategyAward      Strategy = "award"
	StrategyError      Strategy = "error"
	StrategyCurrency   Strategy = "currency"
	StrategyThrowaway  Strategy = "throwaway"
)

// Deal is a discovered itinerary (or pair of itineraries, for split-ticket
// and positioning-flight strategies) along with why it was surfaced.
type Deal struct {
	// ID is a correlation handle, stamped fresh per Deal — not part of
	// deal identity. Use DedupKey for that.
	ID             uuid.UUID `json:"id"`
	PriceUSD       float64   `json:"price_usd"`
	PriceFormatted string    `json:"price_formatted"`
	Strategy       Strategy  `json:"strategy"`
	RiskScore      int       `json:"risk_score"`
	BookingLink    string    `json:"booking_link"`
	Explanation    string    `json:"explanation"`
	Legs           []Leg     `json:"legs"`

	// Itineraries holds the one or two separately-bookable itineraries
	// behind this deal. split-ticket and positioning-flight deals carry
	// exactly two; every other strategy carries one. Legs above is always
	// the flattened view used for dedup-key and time-of-day bucketing.
	Itineraries [][]Leg `json:"-"`
}

// DedupKey is the tuple spec.md §4.8 defines for curator deduplication:
// (legs[0].airline, legs[0].flightNumber, legs[0].departureDate).
func (d Deal) DedupKey() string {
	if len(d.Legs) == 0 {
		return d.ID.String()
	}
	first := d.Legs[0]
	return first.Airline + "|" + first.FlightNumber + "|" + first.DepartAt.Format("2006-01-02")
}

// NewDeal builds a Deal from a single bookable Itinerary, stamping a
// fresh id. bookingLink is the caller-supplied absolute URL (see
// internal/booking.Link) for this itinerary.
func NewDeal(itinerary Itinerary, strategy Strategy, risk int, bookingLink, explanation string) Deal {
	return Deal{
		ID:             uuid.New(),
		PriceUSD:       itinerary.PriceUSD,
		PriceFormatted: currency.FormatUSD(itinerary.PriceUSD),
		Strategy:       strategy,
		RiskScore:      clampRisk(risk),
		BookingLink:    bookingLink,
		Explanation:    explanation,
		Legs:           itinerary.Legs,
		Itineraries:    [][]Leg{itinerary.Legs},
	}
}

// NewMultiItineraryDeal builds a Deal backed by more than one
// separately-bookable itinerary (split-ticket, positioning-flight). Legs
// is the concatenation of all itineraries' legs, in order, for dedup-key
// and time-of-day bucketing purposes. bookingLink is the caller-supplied
// link for the itinerary the traveler books first.
func NewMultiItineraryDeal(strategy Strategy, risk int, itineraries []Itinerary, bookingLink, explanation string) Deal {
	var price float64
	var flat []Leg
	legs := make([][]Leg, len(itineraries))
	for i, it := range itineraries {
		price += it.PriceUSD
		flat = append(flat, it.Legs...)
		legs[i] = it.Legs
	}
	return Deal{
		ID:             uuid.New(),
		PriceUSD:       price,
		PriceFormatted: currency.FormatUSD(price),
		Strategy:       strategy,
		RiskScore:      clampRisk(risk),
		BookingLink:    bookingLink,
		Explanation:    explanation,
		Legs:           flat,
		Itineraries:    legs,
	}
}

func clampRisk(risk int) int {
	if risk < 0 {
		return 0
	}
	if risk > 100 {
		return 100
	}
	return risk
}

// SearchResult is the public output of a search: the curated deal set.
type SearchResult struct {
	SearchID string `json:"search_id"`
	Deals    []Deal `json:"deals"`
}

// ErrorResponse mirrors the teacher's models.ErrorResponse shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
