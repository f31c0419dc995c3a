// Package jsonfile implements the shipment store as a single JSON file
// holding the whole collection. Suited to the single-operator deployment this
// service targets; every write rewrites the file in full.
package jsonfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/Akshit-MMQH/RakshaChain/internal/core/domain"
)

type Store struct {
	path string
	log  zerolog.Logger
}

func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Init creates the backing file with an empty collection when it does not
// exist yet. It must complete before the server accepts any request.
func (s *Store) Init() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.WriteFile(s.path, []byte("[]\n"), 0o644); err != nil {
		return err
	}
	s.log.Info().Str("path", s.path).Msg("created shipment store file")
	return nil
}

// LoadAll returns the stored collection in file order. A missing, unreadable,
// or corrupt file yields an empty collection; the cause is logged, never
// returned.
func (s *Store) LoadAll() []domain.Shipment {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("failed to read shipment store")
		return nil
	}

	var shipments []domain.Shipment
	if err := json.Unmarshal(data, &shipments); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("shipment store is corrupt")
		return nil
	}
	return shipments
}

// SaveAll overwrites the backing file with the full collection.
func (s *Store) SaveAll(shipments []domain.Shipment) error {
	if shipments == nil {
		shipments = []domain.Shipment{}
	}
	data, err := json.MarshalIndent(shipments, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, append(data, '\n'), 0o644)
}
