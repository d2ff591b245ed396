package models

import "time"

// Layover is an intermediate stop inside a single Leg.
type Layover struct {
	Airport     string `json:"airport"`
	DurationMin int    `json:"duration_minutes"`
}

// Leg is one marketed flight segment: origin to destination, possibly with
// its own intermediate layovers (a "direct" leg has none).
type Leg struct {
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	DepartAt     time.Time `json:"depart_at"`
	ArriveAt     time.Time `json:"arrive_at"`
	Airline      string    `json:"airline"`
	FlightNumber string    `json:"flight_number"`
	DurationMin  int       `json:"duration_minutes"`
	Layovers     []Layover `json:"layovers,omitempty"`
}

// IsDirect reports whether this leg is a single non-stop hop: the
// definition spec.md §3 gives for a "direct" itinerary.
func (l Leg) IsDirect() bool {
	return len(l.Layovers) == 0
}

// Itinerary is what a FlightPriceSource returns: an ordered, non-empty
// sequence of legs and a total price.
type Itinerary struct {
	Legs         []Leg   `json:"legs"`
	PriceUSD     float64 `json:"price_usd"`
	BookingToken string  `json:"booking_token,omitempty"`
}

// IsDirect reports whether the whole itinerary is a single leg with no
// layovers.
func (it Itinerary) IsDirect() bool {
	return len(it.Legs) == 1 && it.Legs[0].IsDirect()
}

// HasLayoverAt reports whether any leg has a layover at the given airport.
func (it Itinerary) HasLayoverAt(airport string) bool {
	for _, leg := range it.Legs {
		for _, lay := range leg.Layovers {
			if lay.Airport == airport {
				return true
			}
		}
	}
	return false
}

// FinalDestination is the destination of the itinerary's last leg.
func (it Itinerary) FinalDestination() string {
	if len(it.Legs) == 0 {
		return ""
	}
	return it.Legs[len(it.Legs)-1].Destination
}

// HasStops reports whether the itinerary is more than one leg, or its
// single leg has layovers.
func (it Itinerary) HasStops() bool {
	if len(it.Legs) > 1 {
		return true
	}
	return len(it.Legs) == 1 && !it.Legs[0].IsDirect()
}
