// Package handler is the HTTP ingress for the core's single public
// operation, adapted from the teacher's internal/handler/search.go:
// cache-check, call the core, cache-set, optional best-value sort.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flightdeal/dealfinder/internal/cache"
	"github.com/flightdeal/dealfinder/internal/models"
	"github.com/flightdeal/dealfinder/internal/orchestrator"
	"github.com/flightdeal/dealfinder/internal/ranking"
)

// DealHandler wires the orchestrator and the result cache together.
type DealHandler struct {
	orchestrator  *orchestrator.Orchestrator
	cache         cache.Cache
	searchTimeout time.Duration
}

// NewDealHandler constructs a DealHandler. searchTimeout bounds how long a
// cache-miss search is allowed to run before its context is cancelled; a
// zero value disables the deadline.
func NewDealHandler(orch *orchestrator.Orchestrator, c cache.Cache, searchTimeout time.Duration) *DealHandler {
	return &DealHandler{orchestrator: orch, cache: c, searchTimeout: searchTimeout}
}

// Search is the POST /api/v1/deals/search handler.
func (h *DealHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	var q models.Query
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if cached, found := h.cache.Get(ctx, q); found {
		return c.JSON(http.StatusOK, applySort(cached, c.QueryParam("sort")))
	}

	if h.searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.searchTimeout)
		defer cancel()
	}

	result, err := h.orchestrator.Search(ctx, q, time.Now())
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	_ = h.cache.Set(ctx, q, result)

	return c.JSON(http.StatusOK, applySort(result, c.QueryParam("sort")))
}

// applySort optionally re-sorts the curated output by best-value score;
// the curator's canonical price-ascending order is the default.
func applySort(result models.SearchResult, sortBy string) models.SearchResult {
	if sortBy != "best_value" {
		return result
	}
	return models.SearchResult{
		SearchID: result.SearchID,
		Deals:    ranking.SortByBestValue(result.Deals),
	}
}

// HealthHandler is the GET /health handler.
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
