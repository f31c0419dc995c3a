package domain

// ShipmentStatus represents the lifecycle state of a shipment.
//
// The set is open-ended: the two constants below are the values the system
// assigns itself, but callers may supply any status string via an update.
type ShipmentStatus string

const (
	StatusPending  ShipmentStatus = "pending"
	StatusReceived ShipmentStatus = "received"
)

// Shipment is the unit of tracked cargo.
//
// The ID is assigned by the caller at creation time, must be unique across
// all live shipments, and never changes afterwards. Date is an opaque token;
// no date semantics are enforced on it.
type Shipment struct {
	Name     string         `json:"name"`
	ID       string         `json:"id"`
	Supply   string         `json:"supply"`
	InitLoc  string         `json:"initLoc"`
	FinalLoc string         `json:"finalLoc"`
	Date     string         `json:"date"`
	Status   ShipmentStatus `json:"status"`
}

// Coordinate is a geographic point in (longitude, latitude) order, matching
// the GeoJSON convention used by the routing provider.
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}
