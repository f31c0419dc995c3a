package ports

import (
	"context"

	"github.com/Akshit-MMQH/RakshaChain/internal/core/domain"
)

// CreateShipmentInput carries all data needed to register a new shipment.
// Every field is required; status is not accepted on creation and is always
// forced to "pending".
type CreateShipmentInput struct {
	Name     string
	ID       string
	Supply   string
	InitLoc  string
	FinalLoc string
	Date     string
}

// UpdateShipmentInput carries a partial update. A non-empty field replaces
// the stored value; an empty field keeps it. This means a field can never be
// cleared back to the empty string through an update — a quirk kept from the
// original contract rather than a feature.
type UpdateShipmentInput struct {
	Name     string
	Supply   string
	InitLoc  string
	FinalLoc string
	Date     string
	Status   string
}

// ShipmentService defines the registry operations for shipments.
type ShipmentService interface {
	List(ctx context.Context) []domain.Shipment
	Get(ctx context.Context, id string) (*domain.Shipment, error)
	Create(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)
	Update(ctx context.Context, id string, patch UpdateShipmentInput) (*domain.Shipment, error)
	Delete(ctx context.Context, id string) error
}
