// Package cache provides result caching for the core's public Search
// operation (SPEC_FULL.md §4.11). The core itself is stateless (spec.md
// §6: "Persisted state: none by the core"); caching lives one layer up,
// at the handler, exactly where the teacher wires it.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flightdeal/dealfinder/internal/models"
)

// Cache is the interface the handler depends on, adapted from the
// teacher's Cache interface: same Get/Set/Close shape, re-keyed on
// models.Query and storing models.SearchResult.
type Cache interface {
	Get(ctx context.Context, q models.Query) (models.SearchResult, bool)
	Set(ctx context.Context, q models.Query, result models.SearchResult) error
	Close() error
}

// RedisCache is kept nearly verbatim from the teacher's RedisCache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig mirrors the teacher's RedisConfig.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// DefaultRedisConfig matches spec.md §6's cacheTTL default of 5 minutes.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

// NewRedisCache connects and pings, failing fast on a bad connection the
// same way the teacher's constructor does.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

func (c *RedisCache) Get(ctx context.Context, q models.Query) (models.SearchResult, bool) {
	key := generateKey(q)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return models.SearchResult{}, false
	}

	var result models.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return models.SearchResult{}, false
	}

	return result, true
}

func (c *RedisCache) Set(ctx context.Context, q models.Query, result models.SearchResult) error {
	key := generateKey(q)

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache is the teacher's no-op fallback, unchanged in behaviour.
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, q models.Query) (models.SearchResult, bool) {
	return models.SearchResult{}, false
}

func (c *NoOpCache) Set(ctx context.Context, q models.Query, result models.SearchResult) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// generateKey hashes the query's normalized fields, the same
// struct-then-sha256 shape as the teacher's generateKey.
func generateKey(q models.Query) string {
	keyData := struct {
		Origin        string
		Destination   string
		DepartureDate string
		ReturnDate    string
		Adults        int
		Children      int
		Infants       int
		Cabin         string
	}{
		Origin:        q.Origin,
		Destination:   q.Destination,
		DepartureDate: q.DepartureDate,
		ReturnDate:    q.ReturnDate,
		Adults:        q.Passengers.Adults,
		Children:      q.Passengers.Children,
		Infants:       q.Passengers.Infants,
		Cabin:         string(q.Cabin),
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "deal:" + hex.EncodeToString(hash[:])
}
