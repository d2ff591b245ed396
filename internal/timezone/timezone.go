// Package timezone adapts the teacher's multi-format time parsing and
// airport-local conversion to a geo-table-driven zone lookup, instead of
// the teacher's three hardcoded Indonesian offsets.
package timezone

import (
	"time"

	"github.com/flightdeal/dealfinder/internal/geo"
)

// defaultLocation is used when an airport's zone can't be resolved, the
// same "degrade silently" posture internal/geo takes for unknown airports.
var defaultLocation = time.UTC

// GetLocationByAirport resolves an airport code to its *time.Location,
// falling back to UTC for unknown airports or zones that fail to load.
func GetLocationByAirport(code string) *time.Location {
	airport, ok := geo.Lookup(code)
	if !ok || airport.Timezone == "" {
		return defaultLocation
	}
	loc, err := time.LoadLocation(airport.Timezone)
	if err != nil {
		return defaultLocation
	}
	return loc
}

// ConvertToLocal returns t expressed in the local time of airportCode.
func ConvertToLocal(t time.Time, airportCode string) time.Time {
	return t.In(GetLocationByAirport(airportCode))
}

// ParseFlexible tries a handful of common upstream timestamp formats, the
// same layered-fallback approach as the teacher's ParseTimeWithOffset.
func ParseFlexible(value string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05-0700",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}

	var lastErr error
	for _, format := range formats {
		t, err := time.Parse(format, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// LocalHour returns the hour-of-day (0-23) that t represents in the local
// time of airportCode — the basis for red-eye/early-bird classification
// (spec.md §4.6) and time-of-day bucketing (spec.md §4.8).
func LocalHour(t time.Time, airportCode string) int {
	return ConvertToLocal(t, airportCode).Hour()
}
