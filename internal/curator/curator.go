// Package curator implements the Curator (C8): deduplication and
// diversity-aware selection over the deals every strategy and the
// analyser contributed, capped at 35 and sorted ascending by price.
package curator

import (
	"sort"

	"github.com/flightdeal/dealfinder/internal/models"
	"github.com/flightdeal/dealfinder/internal/timezone"
)

const (
	maxOutput = 35

	specialDealsTarget = 30
	timeBucketTarget   = 40
	airlineTarget      = 40
	priceBandTarget    = 35

	perTimeBucketCap = 2
	perAirlineCap    = 2
	priceBandWidth   = 10.0
)

type timeBucket string

const (
	bucketMorning   timeBucket = "morning"
	bucketAfternoon timeBucket = "afternoon"
	bucketEvening   timeBucket = "evening"
	bucketOvernight timeBucket = "overnight"
)

// Curate runs spec.md §4.8's five-step selection pipeline over the raw
// deal set contributed by the strategies and analyser, then sorts the
// result ascending by price.
func Curate(deals []models.Deal) []models.Deal {
	deduped := dedupe(sortedByPrice(deals))
	if len(deduped) == 0 {
		return nil
	}

	byPrice := sortedByPrice(deduped)

	selected := make([]models.Deal, 0, maxOutput)
	seen := make(map[string]bool, len(deduped))

	add := func(d models.Deal) bool {
		key := d.DedupKey()
		if seen[key] {
			return false
		}
		seen[key] = true
		selected = append(selected, d)
		return true
	}

	// Step 1: globally cheapest deal.
	add(byPrice[0])

	// Step 2: special deals (strategy != standard) until total >= 30.
	for _, d := range byPrice {
		if len(selected) >= specialDealsTarget {
			break
		}
		if d.Strategy != models.StrategyStandard {
			add(d)
		}
	}

	// Step 3: up to 2 per time-of-day bucket until total >= 40.
	bucketCounts := make(map[timeBucket]int)
	for _, d := range byPrice {
		if len(selected) >= timeBucketTarget {
			break
		}
		b := bucketOf(d)
		if bucketCounts[b] >= perTimeBucketCap {
			continue
		}
		if add(d) {
			bucketCounts[b]++
		}
	}

	// Step 4: up to 2 per airline until total >= 40.
	airlineCounts := make(map[string]int)
	for _, d := range byPrice {
		if len(selected) >= airlineTarget {
			break
		}
		airline := primaryAirline(d)
		if airlineCounts[airline] >= perAirlineCap {
			continue
		}
		if add(d) {
			airlineCounts[airline]++
		}
	}

	// Step 5: previously-unseen price bands until total >= 35.
	seenBands := make(map[int]bool)
	for _, d := range byPrice {
		if len(selected) >= priceBandTarget {
			break
		}
		band := int(d.PriceUSD/priceBandWidth) * int(priceBandWidth)
		if seenBands[band] {
			continue
		}
		if add(d) {
			seenBands[band] = true
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].PriceUSD < selected[j].PriceUSD
	})

	if len(selected) > maxOutput {
		selected = selected[:maxOutput]
	}
	return selected
}

// dedupe collapses deals sharing a dedup key, keeping the first (and,
// after sortedByPrice, cheapest) occurrence.
func dedupe(deals []models.Deal) []models.Deal {
	out := make([]models.Deal, 0, len(deals))
	seen := make(map[string]bool, len(deals))
	for _, d := range deals {
		key := d.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}

func sortedByPrice(deals []models.Deal) []models.Deal {
	out := make([]models.Deal, len(deals))
	copy(out, deals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PriceUSD < out[j].PriceUSD
	})
	return out
}

func bucketOf(d models.Deal) timeBucket {
	if len(d.Legs) == 0 {
		return bucketOvernight
	}
	leg := d.Legs[0]
	hour := timezone.LocalHour(leg.DepartAt, leg.Origin)
	switch {
	case hour >= 6 && hour < 12:
		return bucketMorning
	case hour >= 12 && hour < 18:
		return bucketAfternoon
	case hour >= 18 && hour < 24:
		return bucketEvening
	default:
		return bucketOvernight
	}
}

func primaryAirline(d models.Deal) string {
	if len(d.Legs) == 0 {
		return ""
	}
	return d.Legs[0].Airline
}
