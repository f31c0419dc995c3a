package domain

import (
	"errors"
	"fmt"
)

var (
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrDuplicateShipment = errors.New("shipment ID already exists")
	ErrValidation        = errors.New("all fields are required")
	ErrMissingLocations  = errors.New("shipment lacks initLoc/finalLoc")

	// ErrLocationNotFound and ErrNoRoute are domain lookup failures: the
	// upstream service answered successfully but had no candidate. They are
	// deliberately distinct from UpstreamError, which is a transport failure.
	ErrLocationNotFound = errors.New("location not found")
	ErrNoRoute          = errors.New("no route found")

	ErrStorage = errors.New("failed to write shipment store")
)

// UpstreamError reports a non-success response from an external service.
// It carries the upstream status and body so the request boundary can
// surface them to the client.
type UpstreamError struct {
	Op         string // "geocode" or "route"
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %d %s", e.Op, e.StatusCode, e.Body)
}
