package models

import (
	"regexp"
	"strings"
	"time"
)

// Cabin is the fare class requested for a search.
type Cabin string

const (
	CabinEconomy  Cabin = "economy"
	CabinPremium  Cabin = "premium"
	CabinBusiness Cabin = "business"
	CabinFirst    Cabin = "first"
)

func (c Cabin) valid() bool {
	switch c {
	case CabinEconomy, CabinPremium, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

var iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Passengers describes the traveler mix for a query.
type Passengers struct {
	Adults   int `json:"adults"`
	Children int `json:"children,omitempty"`
	Infants  int `json:"infants,omitempty"`
}

// Query is the public search request. DepartureDate/ReturnDate are
// YYYY-MM-DD on the wire and parsed into time.Time during validation.
type Query struct {
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureDate string     `json:"departure"`
	ReturnDate    string     `json:"return,omitempty"`
	Flexible      bool       `json:"flexible,omitempty"`
	Cabin         Cabin      `json:"cabin"`
	Passengers    Passengers `json:"passengers"`

	// Departure/Return are populated by Validate; not part of the wire
	// format directly.
	Departure time.Time `json:"-"`
	Return    time.Time `json:"-"`
}

// Validate normalizes and checks the query, uppercasing IATA codes and
// defaulting cabin the way the teacher's SearchRequest.Validate defaults
// CabinClass/SortBy; adults below 1 is rejected, not defaulted. Returns
// ErrInvalidInput on any failure.
func (q *Query) Validate(now time.Time) error {
	q.Origin = strings.ToUpper(strings.TrimSpace(q.Origin))
	q.Destination = strings.ToUpper(strings.TrimSpace(q.Destination))

	if !iataPattern.MatchString(q.Origin) || !iataPattern.MatchString(q.Destination) {
		return ErrInvalidInput
	}
	if q.Origin == q.Destination {
		return ErrInvalidInput
	}

	if q.Cabin == "" {
		q.Cabin = CabinEconomy
	}
	if !q.Cabin.valid() {
		return ErrInvalidInput
	}

	if q.Passengers.Adults <= 0 {
		return ErrInvalidInput
	}

	dep, err := time.Parse("2006-01-02", q.DepartureDate)
	if err != nil {
		return ErrInvalidInput
	}
	if dep.Before(dateOnly(now)) {
		return ErrInvalidInput
	}
	q.Departure = dep

	if q.ReturnDate != "" {
		ret, err := time.Parse("2006-01-02", q.ReturnDate)
		if err != nil {
			return ErrInvalidInput
		}
		if ret.Before(dep) {
			return ErrInvalidInput
		}
		q.Return = ret
	}

	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
