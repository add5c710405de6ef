package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flyhigh-app/flyhigh/internal/cache"
	"github.com/flyhigh-app/flyhigh/internal/models"
	"github.com/flyhigh-app/flyhigh/internal/simulator"
)

type SearchHandler struct {
	simulator *simulator.Simulator
	cache     cache.Cache
}

func NewSearchHandler(sim *simulator.Simulator, c cache.Cache) *SearchHandler {
	return &SearchHandler{
		simulator: sim,
		cache:     c,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if cachedOffers, found := h.cache.Get(ctx, req); found {
		return c.JSON(http.StatusOK, models.SearchResponse{
			SearchCriteria: req,
			Metadata: models.SearchMetadata{
				TotalResults: len(cachedOffers),
				SearchTimeMs: time.Since(startTime).Milliseconds(),
				CacheHit:     true,
			},
			Flights: cachedOffers,
		})
	}

	offers, err := h.simulator.Search(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search flights: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	_ = h.cache.Set(ctx, req, offers)

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			TotalResults: len(offers),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     false,
		},
		Flights: offers,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
