package ports

import (
	"context"

	"github.com/Akshit-MMQH/RakshaChain/internal/core/domain"
)

// GeocodedLocation is the result of resolving a free-text location.
type GeocodedLocation struct {
	Coord domain.Coordinate `json:"coord"`
	Name  string            `json:"name"`
}

// Geocoder resolves a free-text location to a coordinate and display label.
// A lookup that succeeds but yields no candidate returns an error wrapping
// domain.ErrLocationNotFound and naming the unresolved text.
type Geocoder interface {
	Geocode(ctx context.Context, text string) (*GeocodedLocation, error)
}

// RouteSummary holds the summary figures of a computed route. Values the
// provider omitted are zero, never an error.
type RouteSummary struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// RouteProvider requests a route between two coordinates for a travel
// profile. The profile is free text; an unsupported profile surfaces as
// whatever error the external service returns. A response with zero routes
// returns domain.ErrNoRoute.
type RouteProvider interface {
	Route(ctx context.Context, start, end domain.Coordinate, profile string) (*RouteSummary, error)
}

// GeocodeCache is an optional read-through cache in front of a Geocoder.
// Implementations must treat any internal failure as a miss.
type GeocodeCache interface {
	Get(ctx context.Context, text string) (*GeocodedLocation, bool)
	Set(ctx context.Context, text string, loc *GeocodedLocation)
}

// EstimateInput carries an ad hoc estimate request between two free-text
// locations. Profile is already default-filled by the caller.
type EstimateInput struct {
	StartLocation string
	EndLocation   string
	Profile       string
}

// EstimateResult is the full answer to an estimate request. ShipmentID is
// only set for shipment-bound estimates.
type EstimateResult struct {
	ShipmentID        string
	StartName         string
	EndName           string
	DurationSeconds   float64
	DistanceMeters    float64
	DurationFormatted string
	DistanceFormatted string
	Profile           string
}

// EstimateService answers "how long and how far between A and B", either for
// arbitrary locations or for a stored shipment's origin/destination pair.
type EstimateService interface {
	Estimate(ctx context.Context, input EstimateInput) (*EstimateResult, error)
	EstimateShipment(ctx context.Context, id, profile string) (*EstimateResult, error)
}
