package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flightdeal/dealfinder/internal/models"
)

func TestNoOpCacheAlwaysMisses(t *testing.T) {
	c := NewNoOpCache()
	_, ok := c.Get(context.Background(), models.Query{Origin: "JFK", Destination: "LAX"})
	assert.False(t, ok)
}

func TestNoOpCacheSetIsNoError(t *testing.T) {
	c := NewNoOpCache()
	err := c.Set(context.Background(), models.Query{}, models.SearchResult{})
	assert.NoError(t, err)
}

func TestGenerateKeyIsStableForEquivalentQuery(t *testing.T) {
	q1 := models.Query{Origin: "JFK", Destination: "LAX", DepartureDate: "2026-09-01", Passengers: models.Passengers{Adults: 1}}
	q2 := q1
	assert.Equal(t, generateKey(q1), generateKey(q2))
}

func TestGenerateKeyDiffersForDifferentQuery(t *testing.T) {
	q1 := models.Query{Origin: "JFK", Destination: "LAX", DepartureDate: "2026-09-01", Passengers: models.Passengers{Adults: 1}}
	q2 := models.Query{Origin: "JFK", Destination: "SFO", DepartureDate: "2026-09-01", Passengers: models.Passengers{Adults: 1}}
	assert.NotEqual(t, generateKey(q1), generateKey(q2))
}
