package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Akshit-MMQH/RakshaChain/internal/core/domain"
	"github.com/Akshit-MMQH/RakshaChain/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

type stubStore struct {
	shipments []domain.Shipment
	loadFails bool  // if set, LoadAll behaves like an unreadable backing file
	saveErr   error // if set, SaveAll returns this error
	saves     int
}

func (s *stubStore) LoadAll() []domain.Shipment {
	if s.loadFails {
		return nil
	}
	out := make([]domain.Shipment, len(s.shipments))
	copy(out, s.shipments)
	return out
}

func (s *stubStore) SaveAll(shipments []domain.Shipment) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.shipments = make([]domain.Shipment, len(shipments))
	copy(s.shipments, shipments)
	return nil
}

var discardLogger = zerolog.Nop()

func validInput(id string) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		Name:     "Medical kits",
		ID:       id,
		Supply:   "bandages",
		InitLoc:  "Delhi",
		FinalLoc: "Mumbai",
		Date:     "2026-03-01",
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestShipmentService_Create_Success(t *testing.T) {
	store := &stubStore{}
	svc := NewShipmentService(store, discardLogger)

	created, err := svc.Create(context.Background(), validInput("S1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID != "S1" {
		t.Errorf("expected id %q, got %q", "S1", created.ID)
	}
	if created.Status != domain.StatusPending {
		t.Errorf("expected status %q, got %q", domain.StatusPending, created.Status)
	}
	if store.saves != 1 {
		t.Errorf("expected 1 persisted write, got %d", store.saves)
	}
	if len(store.shipments) != 1 {
		t.Fatalf("expected 1 stored shipment, got %d", len(store.shipments))
	}
}

func TestShipmentService_Create_DuplicateID(t *testing.T) {
	store := &stubStore{}
	svc := NewShipmentService(store, discardLogger)

	if _, err := svc.Create(context.Background(), validInput("S1")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Same id with entirely different field values must still conflict.
	dup := validInput("S1")
	dup.Name = "Something else"
	dup.InitLoc = "Pune"

	_, err := svc.Create(context.Background(), dup)
	if !errors.Is(err, domain.ErrDuplicateShipment) {
		t.Errorf("expected ErrDuplicateShipment, got %v", err)
	}
	if len(store.shipments) != 1 {
		t.Errorf("conflicting create must not persist, got %d shipments", len(store.shipments))
	}
}

func TestShipmentService_Create_MissingFields(t *testing.T) {
	blank := []struct {
		field string
		apply func(*ports.CreateShipmentInput)
	}{
		{"name", func(i *ports.CreateShipmentInput) { i.Name = "" }},
		{"id", func(i *ports.CreateShipmentInput) { i.ID = "" }},
		{"supply", func(i *ports.CreateShipmentInput) { i.Supply = "" }},
		{"initLoc", func(i *ports.CreateShipmentInput) { i.InitLoc = "" }},
		{"finalLoc", func(i *ports.CreateShipmentInput) { i.FinalLoc = "" }},
		{"date", func(i *ports.CreateShipmentInput) { i.Date = "" }},
	}

	for _, tc := range blank {
		t.Run(tc.field, func(t *testing.T) {
			store := &stubStore{}
			svc := NewShipmentService(store, discardLogger)

			input := validInput("S1")
			tc.apply(&input)

			_, err := svc.Create(context.Background(), input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("blank %s: expected ErrValidation, got %v", tc.field, err)
			}
			if store.saves != 0 {
				t.Errorf("blank %s: nothing must be persisted", tc.field)
			}
		})
	}
}

func TestShipmentService_Create_StorageFailure(t *testing.T) {
	store := &stubStore{saveErr: errors.New("disk full")}
	svc := NewShipmentService(store, discardLogger)

	_, err := svc.Create(context.Background(), validInput("S1"))
	if !errors.Is(err, domain.ErrStorage) {
		t.Errorf("expected ErrStorage, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Get / List
// ---------------------------------------------------------------------------

func TestShipmentService_Get_NotFound(t *testing.T) {
	svc := NewShipmentService(&stubStore{}, discardLogger)

	_, err := svc.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Errorf("expected ErrShipmentNotFound, got %v", err)
	}
}

func TestShipmentService_List_ReadFailureYieldsEmpty(t *testing.T) {
	// Read failures are swallowed at the query boundary: the caller sees an
	// empty collection, never an error.
	svc := NewShipmentService(&stubStore{loadFails: true}, discardLogger)

	shipments := svc.List(context.Background())
	if shipments == nil {
		t.Fatal("List must return an empty slice, not nil")
	}
	if len(shipments) != 0 {
		t.Errorf("expected empty collection, got %d", len(shipments))
	}
}

func TestShipmentService_List_PreservesStoreOrder(t *testing.T) {
	store := &stubStore{}
	svc := NewShipmentService(store, discardLogger)

	for _, id := range []string{"S1", "S2", "S3"} {
		if _, err := svc.Create(context.Background(), validInput(id)); err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	shipments := svc.List(context.Background())
	if len(shipments) != 3 {
		t.Fatalf("expected 3 shipments, got %d", len(shipments))
	}
	for i, want := range []string{"S1", "S2", "S3"} {
		if shipments[i].ID != want {
			t.Errorf("position %d: expected %q, got %q", i, want, shipments[i].ID)
		}
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func seed(t *testing.T, svc *ShipmentService, id string) {
	t.Helper()
	if _, err := svc.Create(context.Background(), validInput(id)); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func TestShipmentService_Update_ReplacesNonEmptyFields(t *testing.T) {
	store := &stubStore{}
	svc := NewShipmentService(store, discardLogger)
	seed(t, svc, "S1")

	updated, err := svc.Update(context.Background(), "S1", ports.UpdateShipmentInput{
		Name:   "Water filters",
		Status: "received",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Water filters" {
		t.Errorf("name: expected %q, got %q", "Water filters", updated.Name)
	}
	if updated.Status != domain.StatusReceived {
		t.Errorf("status: expected %q, got %q", domain.StatusReceived, updated.Status)
	}
	// Untouched fields keep their stored values.
	if updated.Supply != "bandages" || updated.InitLoc != "Delhi" {
		t.Errorf("unpatched fields must be preserved: %+v", updated)
	}
}

func TestShipmentService_Update_EmptyStringNeverOverwrites(t *testing.T) {
	// A patch value of "" is indistinguishable from "no change"; the stored
	// value always survives. Kept from the original contract.
	store := &stubStore{}
	svc := NewShipmentService(store, discardLogger)
	seed(t, svc, "S1")

	updated, err := svc.Update(context.Background(), "S1", ports.UpdateShipmentInput{Name: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Medical kits" {
		t.Errorf("empty patch must keep stored name, got %q", updated.Name)
	}
}

func TestShipmentService_Update_OmittedStatusPreserved(t *testing.T) {
	store := &stubStore{}
	svc := NewShipmentService(store, discardLogger)
	seed(t, svc, "S1")

	if _, err := svc.Update(context.Background(), "S1", ports.UpdateShipmentInput{Status: "received"}); err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(context.Background(), "S1", ports.UpdateShipmentInput{Name: "Renamed"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != domain.StatusReceived {
		t.Errorf("omitted status must preserve prior value, got %q", updated.Status)
	}
}

func TestShipmentService_Update_StatuslessRecordDefaultsToPending(t *testing.T) {
	// Records written before the status field existed carry none; the first
	// update backfills pending.
	store := &stubStore{shipments: []domain.Shipment{
		{Name: "Legacy", ID: "OLD1", Supply: "grain", InitLoc: "A", FinalLoc: "B", Date: "2025-01-01"},
	}}
	svc := NewShipmentService(store, discardLogger)

	updated, err := svc.Update(context.Background(), "OLD1", ports.UpdateShipmentInput{Name: "Legacy grain"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.StatusPending {
		t.Errorf("expected backfilled %q, got %q", domain.StatusPending, updated.Status)
	}
}

func TestShipmentService_Update_IDNeverChanges(t *testing.T) {
	store := &stubStore{}
	svc := NewShipmentService(store, discardLogger)
	seed(t, svc, "S1")

	updated, err := svc.Update(context.Background(), "S1", ports.UpdateShipmentInput{Name: "Renamed"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != "S1" {
		t.Errorf("id must be immutable, got %q", updated.ID)
	}
}

func TestShipmentService_Update_NotFound(t *testing.T) {
	svc := NewShipmentService(&stubStore{}, discardLogger)

	_, err := svc.Update(context.Background(), "missing", ports.UpdateShipmentInput{Name: "x"})
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Errorf("expected ErrShipmentNotFound, got %v", err)
	}
}

func TestShipmentService_Update_LastWriterWins(t *testing.T) {
	// Overlapping updates resolve last-writer-wins; this is the accepted
	// behaviour for the single-operator deployment, not a defect.
	store := &stubStore{}
	svc := NewShipmentService(store, discardLogger)
	seed(t, svc, "S1")

	if _, err := svc.Update(context.Background(), "S1", ports.UpdateShipmentInput{Supply: "first"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Update(context.Background(), "S1", ports.UpdateShipmentInput{Supply: "second"}); err != nil {
		t.Fatal(err)
	}

	current, err := svc.Get(context.Background(), "S1")
	if err != nil {
		t.Fatal(err)
	}
	if current.Supply != "second" {
		t.Errorf("expected last write to win, got %q", current.Supply)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestShipmentService_Delete_Success(t *testing.T) {
	store := &stubStore{}
	svc := NewShipmentService(store, discardLogger)
	seed(t, svc, "S1")

	if err := svc.Delete(context.Background(), "S1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.shipments) != 0 {
		t.Errorf("expected empty store after delete, got %d", len(store.shipments))
	}
}

func TestShipmentService_Delete_NotFoundIsRepeatable(t *testing.T) {
	svc := NewShipmentService(&stubStore{}, discardLogger)

	for attempt := 1; attempt <= 2; attempt++ {
		err := svc.Delete(context.Background(), "missing")
		if !errors.Is(err, domain.ErrShipmentNotFound) {
			t.Errorf("attempt %d: expected ErrShipmentNotFound, got %v", attempt, err)
		}
	}
}

func TestShipmentService_Delete_StorageFailure(t *testing.T) {
	store := &stubStore{shipments: []domain.Shipment{{ID: "S1", Name: "x"}}}
	store.saveErr = errors.New("disk full")
	svc := NewShipmentService(store, discardLogger)

	err := svc.Delete(context.Background(), "S1")
	if !errors.Is(err, domain.ErrStorage) {
		t.Errorf("expected ErrStorage, got %v", err)
	}
}
