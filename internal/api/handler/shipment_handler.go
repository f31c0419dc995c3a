package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Akshit-MMQH/RakshaChain/internal/api/metrics"
	"github.com/Akshit-MMQH/RakshaChain/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for the shipment registry.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// List handles GET /api/shipments.
func (h *ShipmentHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List(c.Request().Context()))
}

// Get handles GET /api/shipments/:id.
func (h *ShipmentHandler) Get(c echo.Context) error {
	shipment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shipment)
}

// Create handles POST /api/shipments.
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateShipmentInput{
		Name:     req.Name,
		ID:       req.ID,
		Supply:   req.Supply,
		InitLoc:  req.InitLoc,
		FinalLoc: req.FinalLoc,
		Date:     req.Date,
	})
	if err != nil {
		return err
	}

	metrics.ShipmentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/shipments/:id.
func (h *ShipmentHandler) Update(c echo.Context) error {
	var req updateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateShipmentInput{
		Name:     req.Name,
		Supply:   req.Supply,
		InitLoc:  req.InitLoc,
		FinalLoc: req.FinalLoc,
		Date:     req.Date,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/shipments/:id.
func (h *ShipmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ShipmentsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Shipment deleted successfully"})
}
