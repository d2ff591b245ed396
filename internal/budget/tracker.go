// Package budget implements the global per-search API budget (component
// C3): a fetch-and-increment counter shared across every concurrently
// running strategy, and a BudgetedCaller that wraps a FlightPriceSource
// with it.
package budget

import "sync/atomic"

// Tracker is the per-search {max, used} state spec.md §3 defines. used is
// monotonically non-decreasing for the lifetime of one Query.
type Tracker struct {
	max  int64
	used int64
}

// NewTracker constructs a Tracker with the given maximum call count.
func NewTracker(max int) *Tracker {
	return &Tracker{max: int64(max)}
}

// Max returns the configured ceiling.
func (t *Tracker) Max() int {
	return int(t.max)
}

// Used returns the number of calls issued so far (a snapshot; may be
// stale the instant it's read, by design — see spec.md §4.3).
func (t *Tracker) Used() int {
	return int(atomic.LoadInt64(&t.used))
}

// TryReserve atomically increments used if it is still below max and
// reports whether a slot was taken. A refused reservation leaves used
// unchanged, so Used() never exceeds Max() — callers that get false back
// must not invoke the upstream source.
func (t *Tracker) TryReserve() bool {
	for {
		cur := atomic.LoadInt64(&t.used)
		if cur >= t.max {
			return false
		}
		if atomic.CompareAndSwapInt64(&t.used, cur, cur+1) {
			return true
		}
	}
}
