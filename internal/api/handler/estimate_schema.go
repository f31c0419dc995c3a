package handler

// estimateRequest is the body of POST /api/estimate. Mode is the optional
// travel profile and defaults to driving-car at this boundary.
type estimateRequest struct {
	StartLocation string `json:"startLocation" validate:"required"`
	EndLocation   string `json:"endLocation"   validate:"required"`
	Mode          string `json:"mode"`
}

// estimateResponse is the shared payload of both estimate endpoints.
// Duration is raw seconds and distance raw meters; the formatted fields are
// the human-readable renderings. ShipmentID is only present on the
// per-shipment variant.
type estimateResponse struct {
	ShipmentID        string  `json:"shipmentId,omitempty"`
	StartName         string  `json:"startName"`
	EndName           string  `json:"endName"`
	Duration          float64 `json:"duration"`
	Distance          float64 `json:"distance"`
	DurationFormatted string  `json:"durationFormatted"`
	DistanceFormatted string  `json:"distanceFormatted"`
	Profile           string  `json:"profile"`
}
