// Package orchestrator implements the top-level coordinator (C7): the
// core's only public entry point. It validates the query, issues the
// baseline call, fans strategies and the analyser out concurrently, and
// hands the joined deal set to the curator.
package orchestrator

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/flightdeal/dealfinder/internal/analyzer"
	"github.com/flightdeal/dealfinder/internal/booking"
	"github.com/flightdeal/dealfinder/internal/budget"
	"github.com/flightdeal/dealfinder/internal/curator"
	"github.com/flightdeal/dealfinder/internal/heuristics"
	"github.com/flightdeal/dealfinder/internal/models"
	"github.com/flightdeal/dealfinder/internal/ratelimit"
	"github.com/flightdeal/dealfinder/internal/source"
	"github.com/flightdeal/dealfinder/internal/strategy"
)

// Orchestrator ties the upstream source, budget, and rate limiter
// together and exposes the single Search operation.
type Orchestrator struct {
	source   source.FlightPriceSource
	maxCalls int
	limiter  *ratelimit.ReasonLimiter
}

// New constructs an Orchestrator. limiter may be nil to disable pacing.
func New(src source.FlightPriceSource, maxCalls int, limiter *ratelimit.ReasonLimiter) *Orchestrator {
	return &Orchestrator{source: src, maxCalls: maxCalls, limiter: limiter}
}

// Search runs the full C7 pipeline for one query: validate, baseline
// call, concurrent strategy/analyser dispatch, join, curate. The only
// errors it returns are validation errors and budget misconfiguration;
// every upstream failure is absorbed per spec.md §7.
func (o *Orchestrator) Search(ctx context.Context, q models.Query, now time.Time) (models.SearchResult, error) {
	if err := q.Validate(now); err != nil {
		return models.SearchResult{}, err
	}
	if o.maxCalls < 1 {
		return models.SearchResult{}, models.ErrBudgetZero
	}

	tracker := budget.NewTracker(o.maxCalls)
	caller := budget.New(o.source, tracker, o.limiter)

	baseline := caller.Call(ctx, q.Origin, q.Destination, q.Departure, returnPtr(q), q.Cabin, "baseline")
	if len(baseline) == 0 {
		return models.SearchResult{Deals: nil}, nil
	}

	baselineItinerary, _ := cheapestItinerary(baseline)
	basePrice := baselineItinerary.PriceUSD

	deals := dispatch(ctx, q, basePrice, caller, baseline)

	baselineDeal := models.NewDeal(baselineItinerary, models.StrategyStandard, 0, booking.Link(baselineItinerary),
		"Baseline fare for this route and date")
	deals = append(deals, baselineDeal)

	curated := curator.Curate(deals)
	return models.SearchResult{Deals: curated}, nil
}

// dispatch runs the four budget-consuming strategies concurrently
// (gated by their eligibility thresholds before even scheduling a task,
// per spec.md §4.7 step 5), plus the zero-cost analyser pass, and joins
// on a WaitGroup-drained channel the same shape as the teacher's
// aggregator.Search fan-out.
func dispatch(ctx context.Context, q models.Query, basePrice float64, caller *budget.Caller, baseline []models.Itinerary) []models.Deal {
	type task func() []models.Deal

	var tasks []task

	if basePrice >= strategy.NearbyAirportMinPrice {
		tasks = append(tasks, func() []models.Deal { return strategy.NearbyAirport(ctx, q, basePrice, caller) })
	}
	if basePrice >= strategy.SplitTicketMinPrice {
		tasks = append(tasks, func() []models.Deal { return strategy.SplitTicket(ctx, q, basePrice, caller) })
	}
	if heuristics.ShouldCheckPositioning(basePrice) {
		tasks = append(tasks, func() []models.Deal { return strategy.Positioning(ctx, q, basePrice, caller) })
	}
	if heuristics.ShouldCheckHiddenCity(basePrice) {
		tasks = append(tasks, func() []models.Deal { return strategy.HiddenCity(ctx, q, basePrice, caller) })
	}

	// Zero-cost strategies and the analyser need no gating: they never
	// touch the budget.
	tasks = append(tasks, func() []models.Deal { return strategy.ConnectingExtractor(baseline) })
	tasks = append(tasks, func() []models.Deal { return strategy.BudgetAirlineFilter(baseline) })
	tasks = append(tasks, func() []models.Deal { return analyzer.Analyze(baseline) })

	resultCh := make(chan []models.Deal, len(tasks))
	var wg sync.WaitGroup

	for _, t := range tasks {
		wg.Add(1)
		go func(run task) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("strategy task panicked, dropping its deals: %v", r)
					resultCh <- nil
				}
			}()
			resultCh <- run()
		}(t)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var deals []models.Deal
	for ds := range resultCh {
		deals = append(deals, ds...)
	}
	return deals
}

func cheapestItinerary(itineraries []models.Itinerary) (models.Itinerary, bool) {
	if len(itineraries) == 0 {
		return models.Itinerary{}, false
	}
	best := itineraries[0]
	for _, it := range itineraries[1:] {
		if it.PriceUSD < best.PriceUSD {
			best = it
		}
	}
	return best, true
}

func returnPtr(q models.Query) *time.Time {
	if q.Return.IsZero() {
		return nil
	}
	ret := q.Return
	return &ret
}
