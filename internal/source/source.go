// Package source defines the opaque upstream flight-price provider
// (component C2) and a deterministic in-memory reference implementation
// used by tests and local development.
package source

import (
	"context"
	"time"

	"github.com/flightdeal/dealfinder/internal/models"
)

// FlightPriceSource is the single external collaborator this core depends
// on. Implementations must be safe for concurrent invocation and should be
// idempotent for identical inputs within a short window (spec.md §4.2).
type FlightPriceSource interface {
	Search(ctx context.Context, origin, destination string, departure time.Time, ret *time.Time, cabin models.Cabin) ([]models.Itinerary, error)
}
