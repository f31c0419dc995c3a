package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Akshit-MMQH/RakshaChain/internal/api/metrics"
	"github.com/Akshit-MMQH/RakshaChain/internal/core/domain"
	"github.com/Akshit-MMQH/RakshaChain/internal/core/ports"
	"github.com/Akshit-MMQH/RakshaChain/internal/core/service"
)

// EstimateHandler handles travel time/distance estimate requests.
type EstimateHandler struct {
	service ports.EstimateService
}

func NewEstimateHandler(svc ports.EstimateService) *EstimateHandler {
	return &EstimateHandler{service: svc}
}

// Estimate handles POST /api/estimate.
func (h *EstimateHandler) Estimate(c echo.Context) error {
	var req estimateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "startLocation and endLocation are required")
	}

	result, err := h.service.Estimate(c.Request().Context(), ports.EstimateInput{
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		Profile:       defaultProfile(req.Mode),
	})
	if err != nil {
		countEstimateError(err)
		return err
	}

	metrics.EstimatesTotal.WithLabelValues(result.Profile, "adhoc").Inc()
	return c.JSON(http.StatusOK, toEstimateResponse(result))
}

// EstimateShipment handles GET /api/shipments/:id/estimate.
func (h *EstimateHandler) EstimateShipment(c echo.Context) error {
	result, err := h.service.EstimateShipment(
		c.Request().Context(),
		c.Param("id"),
		defaultProfile(c.QueryParam("mode")),
	)
	if err != nil {
		countEstimateError(err)
		return err
	}

	metrics.EstimatesTotal.WithLabelValues(result.Profile, "shipment").Inc()
	return c.JSON(http.StatusOK, toEstimateResponse(result))
}

// defaultProfile fills in the travel profile at the request boundary.
func defaultProfile(mode string) string {
	if mode == "" {
		return service.DefaultProfile
	}
	return mode
}

func toEstimateResponse(r *ports.EstimateResult) estimateResponse {
	return estimateResponse{
		ShipmentID:        r.ShipmentID,
		StartName:         r.StartName,
		EndName:           r.EndName,
		Duration:          r.DurationSeconds,
		Distance:          r.DistanceMeters,
		DurationFormatted: r.DurationFormatted,
		DistanceFormatted: r.DistanceFormatted,
		Profile:           r.Profile,
	}
}

func countEstimateError(err error) {
	var ue *domain.UpstreamError

	reason := "internal"
	switch {
	case errors.Is(err, domain.ErrLocationNotFound):
		reason = "location_not_found"
	case errors.Is(err, domain.ErrNoRoute):
		reason = "no_route"
	case errors.Is(err, domain.ErrShipmentNotFound):
		reason = "shipment_not_found"
	case errors.Is(err, domain.ErrMissingLocations):
		reason = "missing_locations"
	case errors.As(err, &ue):
		reason = "upstream"
	}
	metrics.EstimateErrorsTotal.WithLabelValues(reason).Inc()
}
