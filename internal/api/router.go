package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Akshit-MMQH/RakshaChain/internal/api/handler"
	"github.com/Akshit-MMQH/RakshaChain/internal/core/ports"
)

// Dependencies carries everything the router needs to wire its handlers.
type Dependencies struct {
	Shipments ports.ShipmentService
	Estimates ports.EstimateService
	StorePath string
	Redis     *redis.Client // nil when the geocode cache is disabled
	Log       zerolog.Logger
	// Metrics lets tests supply an isolated registry; nil uses the default.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// The admin UI is served from a different origin.
	e.Use(echomiddleware.CORS())

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Metrics != nil {
		registerer = deps.Metrics
		gatherer = deps.Metrics
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "raksha",
		Registerer: registerer,
	}))

	// --- Dependencies ---
	shipmentHandler := handler.NewShipmentHandler(deps.Shipments)
	estimateHandler := handler.NewEstimateHandler(deps.Estimates)
	healthHandler := handler.NewHealthHandler(deps.StorePath, deps.Redis)

	// --- Shipment registry + estimates ---
	g := e.Group("/api")
	g.GET("/shipments", shipmentHandler.List)
	g.POST("/shipments", shipmentHandler.Create)
	g.GET("/shipments/:id", shipmentHandler.Get)
	g.PUT("/shipments/:id", shipmentHandler.Update)
	g.DELETE("/shipments/:id", shipmentHandler.Delete)
	g.GET("/shipments/:id/estimate", estimateHandler.EstimateShipment)
	g.POST("/estimate", estimateHandler.Estimate)

	// --- Health probes + metrics ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)     // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	return e
}
