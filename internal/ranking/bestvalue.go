// Package ranking provides a secondary "best value" ordering over an
// already-curated deal set (SPEC_FULL.md §4.10), distinct from the
// curator's canonical price-ascending sort.
package ranking

import (
	"math"
	"sort"

	"github.com/flightdeal/dealfinder/internal/models"
)

// Ranking algorithm weights, same split the teacher uses: price matters
// most, then duration, then stop count.
const (
	weightPrice    = 0.5
	weightDuration = 0.3
	weightStops    = 0.2
)

// BestValueScores computes a best-value score per deal using min/max
// normalisation (value in [0,1], 0 best) rather than the teacher's
// max-only normalisation, so a cheap-but-not-cheapest deal isn't
// penalised relative to the single most expensive deal in the set. Does
// not mutate the input.
func BestValueScores(deals []models.Deal) []float64 {
	if len(deals) == 0 {
		return nil
	}

	minPrice, maxPrice := priceRange(deals)
	minDuration, maxDuration := durationRange(deals)
	minStops, maxStops := stopsRange(deals)

	scores := make([]float64, len(deals))
	for i, d := range deals {
		normPrice := normalize(d.PriceUSD, minPrice, maxPrice)
		normDuration := normalize(float64(totalDurationMin(d)), float64(minDuration), float64(maxDuration))
		normStops := normalize(float64(stopCount(d)), float64(minStops), float64(maxStops))

		score := weightPrice*normPrice + weightDuration*normDuration + weightStops*normStops
		scores[i] = math.Round(score*10000) / 10000
	}
	return scores
}

// SortByBestValue returns a copy of deals sorted ascending by best-value
// score (lower is better), stable on ties.
func SortByBestValue(deals []models.Deal) []models.Deal {
	if len(deals) == 0 {
		return deals
	}
	scores := BestValueScores(deals)

	type scored struct {
		deal  models.Deal
		score float64
	}
	paired := make([]scored, len(deals))
	for i, d := range deals {
		paired[i] = scored{deal: d, score: scores[i]}
	}

	sort.SliceStable(paired, func(i, j int) bool {
		return paired[i].score < paired[j].score
	})

	out := make([]models.Deal, len(paired))
	for i, p := range paired {
		out[i] = p.deal
	}
	return out
}

func normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

func priceRange(deals []models.Deal) (min, max float64) {
	min, max = math.MaxFloat64, 0
	for _, d := range deals {
		if d.PriceUSD < min {
			min = d.PriceUSD
		}
		if d.PriceUSD > max {
			max = d.PriceUSD
		}
	}
	return min, max
}

func durationRange(deals []models.Deal) (min, max int) {
	min, max = int(^uint(0)>>1), 0
	for _, d := range deals {
		dur := totalDurationMin(d)
		if dur < min {
			min = dur
		}
		if dur > max {
			max = dur
		}
	}
	return min, max
}

func stopsRange(deals []models.Deal) (min, max int) {
	min, max = int(^uint(0)>>1), 0
	for _, d := range deals {
		s := stopCount(d)
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max
}

func totalDurationMin(d models.Deal) int {
	total := 0
	for _, leg := range d.Legs {
		total += leg.DurationMin
	}
	return total
}

func stopCount(d models.Deal) int {
	stops := 0
	for _, leg := range d.Legs {
		stops += len(leg.Layovers)
	}
	if len(d.Legs) > 1 {
		stops += len(d.Legs) - 1
	}
	return stops
}
