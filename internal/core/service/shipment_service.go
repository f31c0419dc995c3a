package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Akshit-MMQH/RakshaChain/internal/core/domain"
	"github.com/Akshit-MMQH/RakshaChain/internal/core/ports"
)

// ShipmentService is the shipment registry: it owns identifier uniqueness,
// required-field validation, and the status lifecycle on top of the
// whole-collection store.
type ShipmentService struct {
	store ports.ShipmentStore
	log   zerolog.Logger

	// mu serializes read-modify-write cycles so a reader never observes a
	// half-written collection. Concurrent clients racing on overlapping
	// updates still resolve last-writer-wins.
	mu sync.Mutex
}

func NewShipmentService(store ports.ShipmentStore, log zerolog.Logger) *ShipmentService {
	return &ShipmentService{store: store, log: log}
}

// List returns every stored shipment. Read failures surface as an empty
// collection, not an error.
func (s *ShipmentService) List(_ context.Context) []domain.Shipment {
	shipments := s.store.LoadAll()
	if shipments == nil {
		shipments = []domain.Shipment{}
	}
	return shipments
}

// Get returns the shipment with the given id.
func (s *ShipmentService) Get(_ context.Context, id string) (*domain.Shipment, error) {
	for _, sh := range s.store.LoadAll() {
		if sh.ID == id {
			found := sh
			return &found, nil
		}
	}
	return nil, domain.ErrShipmentNotFound
}

// Create registers a new shipment. All input fields are required and the id
// must not collide with a live shipment. Status is always forced to pending,
// regardless of anything the caller sent.
func (s *ShipmentService) Create(_ context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	if input.Name == "" || input.ID == "" || input.Supply == "" ||
		input.InitLoc == "" || input.FinalLoc == "" || input.Date == "" {
		return nil, domain.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shipments := s.store.LoadAll()
	for _, sh := range shipments {
		if sh.ID == input.ID {
			return nil, domain.ErrDuplicateShipment
		}
	}

	created := domain.Shipment{
		Name:     input.Name,
		ID:       input.ID,
		Supply:   input.Supply,
		InitLoc:  input.InitLoc,
		FinalLoc: input.FinalLoc,
		Date:     input.Date,
		Status:   domain.StatusPending,
	}
	shipments = append(shipments, created)

	if err := s.store.SaveAll(shipments); err != nil {
		s.log.Error().Err(err).Str("id", created.ID).Msg("failed to persist new shipment")
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	s.log.Info().Str("id", created.ID).Str("init_loc", created.InitLoc).Str("final_loc", created.FinalLoc).Msg("shipment created")
	return &created, nil
}

// Update applies a partial update to an existing shipment. Only non-empty
// patch fields replace stored values (see ports.UpdateShipmentInput for the
// empty-string caveat). The id is never altered. Status falls back to the
// stored value, and to pending when the record has none.
func (s *ShipmentService) Update(_ context.Context, id string, patch ports.UpdateShipmentInput) (*domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shipments := s.store.LoadAll()
	index := -1
	for i, sh := range shipments {
		if sh.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, domain.ErrShipmentNotFound
	}

	current := shipments[index]
	current.Name = orKeep(patch.Name, current.Name)
	current.Supply = orKeep(patch.Supply, current.Supply)
	current.InitLoc = orKeep(patch.InitLoc, current.InitLoc)
	current.FinalLoc = orKeep(patch.FinalLoc, current.FinalLoc)
	current.Date = orKeep(patch.Date, current.Date)

	status := domain.ShipmentStatus(patch.Status)
	if status == "" {
		status = current.Status
	}
	if status == "" {
		status = domain.StatusPending
	}
	current.Status = status

	shipments[index] = current

	if err := s.store.SaveAll(shipments); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("failed to persist shipment update")
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	s.log.Info().Str("id", id).Str("status", string(current.Status)).Msg("shipment updated")
	return &current, nil
}

// Delete removes the shipment with the given id.
func (s *ShipmentService) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shipments := s.store.LoadAll()
	remaining := make([]domain.Shipment, 0, len(shipments))
	for _, sh := range shipments {
		if sh.ID != id {
			remaining = append(remaining, sh)
		}
	}
	if len(remaining) == len(shipments) {
		return domain.ErrShipmentNotFound
	}

	if err := s.store.SaveAll(remaining); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("failed to persist shipment deletion")
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	s.log.Info().Str("id", id).Msg("shipment deleted")
	return nil
}

// orKeep returns value unless it is empty, in which case fallback is kept.
func orKeep(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
