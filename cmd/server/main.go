package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/flightdeal/dealfinder/internal/cache"
	"github.com/flightdeal/dealfinder/internal/config"
	"github.com/flightdeal/dealfinder/internal/handler"
	"github.com/flightdeal/dealfinder/internal/orchestrator"
	"github.com/flightdeal/dealfinder/internal/ratelimit"
	"github.com/flightdeal/dealfinder/internal/source"
)

func main() {
	cfg := config.Load()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	src := source.NewMock()
	log.Println("using in-memory reference flight-price source; wire a real FlightPriceSource for production")

	rateLimiter := ratelimit.NewReasonLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	})

	orch := orchestrator.New(src, cfg.MaxCallsPerSearch, rateLimiter)

	var dealCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		dealCache = redisCache
		log.Printf("redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		dealCache = cache.NewNoOpCache()
		log.Println("cache disabled")
	}

	dealHandler := handler.NewDealHandler(orch, dealCache, cfg.SearchTimeout)

	api := e.Group("/api/v1")
	api.POST("/deals/search", dealHandler.Search)
	e.GET("/health", handler.HealthHandler)

	log.Printf("starting flight deal discovery server on port %s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
