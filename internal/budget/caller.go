package budget

import (
	"context"
	"log"
	"time"

	"github.com/flightdeal/dealfinder/internal/models"
	"github.com/flightdeal/dealfinder/internal/ratelimit"
	"github.com/flightdeal/dealfinder/internal/source"
)

// DefaultMaxCallsPerSearch is spec.md §4.3's default budget.
const DefaultMaxCallsPerSearch = 15

// Caller wraps a FlightPriceSource with a shared Tracker (component C3).
// Every strategy that wants to issue an upstream call goes through the
// same Caller so the budget is enforced across all of them, the way every
// provider in the teacher's aggregator goes through the same
// ratelimit.ProviderLimiter.
type Caller struct {
	source  source.FlightPriceSource
	tracker *Tracker
	limiter *ratelimit.ReasonLimiter
}

// New constructs a Caller. limiter may be nil to disable pacing (tests
// commonly do this to keep scenarios deterministic and fast).
func New(src source.FlightPriceSource, tracker *Tracker, limiter *ratelimit.ReasonLimiter) *Caller {
	return &Caller{source: src, tracker: tracker, limiter: limiter}
}

// Call enforces the budget before ever touching the upstream source: if
// the shared counter is already at/over max, it returns an empty result
// immediately, no error, no log beyond a debug trace. Underlying source
// failures are absorbed here too — logged, and surfaced as empty,
// per spec.md §4.3 and §7.
func (c *Caller) Call(ctx context.Context, origin, destination string, departure time.Time, ret *time.Time, cabin models.Cabin, reason string) []models.Itinerary {
	if !c.tracker.TryReserve() {
		log.Printf("budget exhausted (used=%d max=%d): skipping %s %s->%s", c.tracker.Used(), c.tracker.Max(), reason, origin, destination)
		return nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, reason); err != nil {
			log.Printf("rate limiter wait aborted for %s %s->%s: %v", reason, origin, destination, err)
			return nil
		}
	}

	itineraries, err := c.source.Search(ctx, origin, destination, departure, ret, cabin)
	if err != nil {
		log.Printf("upstream call failed (%s %s->%s): %v", reason, origin, destination, err)
		return nil
	}
	return itineraries
}

// Used exposes the tracker's current usage, for logging/telemetry at the
// orchestrator level.
func (c *Caller) Used() int {
	return c.tracker.Used()
}

// Max exposes the tracker's ceiling.
func (c *Caller) Max() int {
	return c.tracker.Max()
}
