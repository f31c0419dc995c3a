// Package metrics defines and registers all custom Prometheus metrics for
// the shipment API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "raksha"

// ShipmentsCreatedTotal counts shipments successfully registered.
var ShipmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created.",
	},
)

// ShipmentsDeletedTotal counts shipments removed from the registry.
var ShipmentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_deleted_total",
		Help:      "Total number of shipments deleted.",
	},
)

// EstimatesTotal counts successful travel estimates.
// Labels:
//   - profile: the travel profile used (e.g. "driving-car")
//   - kind: "adhoc" for free-text estimates, "shipment" for stored shipments
var EstimatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimates_total",
		Help:      "Total number of travel estimates served, by profile and kind.",
	},
	[]string{"profile", "kind"},
)

// EstimateErrorsTotal counts failed travel estimates.
// Label:
//   - reason: short failure class (e.g. "location_not_found", "no_route",
//     "upstream", "shipment_not_found", "missing_locations", "internal")
var EstimateErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimate_errors_total",
		Help:      "Total number of travel estimates that failed, by reason.",
	},
	[]string{"reason"},
)
