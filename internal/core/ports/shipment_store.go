package ports

import (
	"github.com/Akshit-MMQH/RakshaChain/internal/core/domain"
)

// ShipmentStore is the durable whole-collection store backing the registry.
//
// The read and write sides fail differently on purpose:
//   - LoadAll never fails. A missing, unreadable, or corrupt backing store
//     yields an empty collection (the implementation logs the cause).
//   - SaveAll overwrites the backing store with the full collection and
//     reports I/O failures, so the registry can translate them into a
//     storage error at the write boundary.
type ShipmentStore interface {
	LoadAll() []domain.Shipment
	SaveAll(shipments []domain.Shipment) error
}
