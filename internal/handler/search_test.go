package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightdeal/dealfinder/internal/cache"
	"github.com/flightdeal/dealfinder/internal/models"
	"github.com/flightdeal/dealfinder/internal/orchestrator"
	"github.com/flightdeal/dealfinder/internal/source"
)

func newTestEcho(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/deals/search", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSearchHandlerReturnsDealsOnSuccess(t *testing.T) {
	mock := source.NewMock()
	departure := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	mock.AddRoute("JFK", "LAX", models.Itinerary{
		PriceUSD: 200,
		Legs:     []models.Leg{{Origin: "JFK", Destination: "LAX", Airline: "United", FlightNumber: "UA1"}},
	})

	orch := orchestrator.New(mock, 15, nil)
	h := NewDealHandler(orch, cache.NewNoOpCache(), 5*time.Second)

	body := `{"origin":"JFK","destination":"LAX","departure":"` + departure + `","passengers":{"adults":1}}`
	c, rec := newTestEcho(body)

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Deals)
}

func TestSearchHandlerReturns400OnValidationError(t *testing.T) {
	mock := source.NewMock()
	orch := orchestrator.New(mock, 15, nil)
	h := NewDealHandler(orch, cache.NewNoOpCache(), 5*time.Second)

	body := `{"origin":"XX","destination":"LAX","departure":"2026-09-01","passengers":{"adults":1}}`
	c, rec := newTestEcho(body)

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandlerReturnsOK(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
