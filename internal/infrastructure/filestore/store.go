// Package filestore implements the invoice repository on a single JSON
// file: an in-memory map keyed by store id, flushed wholesale to disk by an
// explicit persist after every mutation. Full overwrite, never append.
// Last write wins; single process, single file.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/socialxspark/invoice-api/internal/domain"
	"github.com/socialxspark/invoice-api/internal/domain/entity"
)

// Store is a file-backed invoice repository with an explicit lifecycle:
// Open loads the dataset, Close flushes it one last time. It is constructed
// and injected, never a process-wide singleton.
type Store struct {
	fs   afero.Fs
	path string
	log  zerolog.Logger

	mu       sync.RWMutex
	invoices map[string]*entity.Invoice
}

// Open loads the dataset from path. A missing file means an empty store;
// a corrupt file is an error so a typo'd path never silently shadows data.
func Open(fs afero.Fs, path string, log zerolog.Logger) (*Store, error) {
	s := &Store{
		fs:       fs,
		path:     path,
		log:      log,
		invoices: make(map[string]*entity.Invoice),
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("filestore: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.invoices); err != nil {
		return nil, fmt.Errorf("filestore: parse %s: %w", path, err)
	}

	log.Info().Int("invoices", len(s.invoices)).Str("path", path).Msg("invoice store loaded")
	return s, nil
}

// Close flushes the dataset a final time.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

// Create stores a new record. The persistent identity and CreatedAt are
// assigned here, not by the model; an id already present on the record is
// kept (the caller reserved it).
func (s *Store) Create(inv *entity.Invoice) (*entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := inv.Clone()
	if rec.ID == "" {
		rec.ID = "INV-" + uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	s.invoices[rec.ID] = rec
	if err := s.persist(); err != nil {
		delete(s.invoices, rec.ID)
		return nil, err
	}
	return rec.Clone(), nil
}

// GetByID returns a copy of the record, or domain.ErrNotFound.
func (s *Store) GetByID(id string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.invoices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec.Clone(), nil
}

// List returns copies of every record, sorted by CreatedAt then id so
// listings are deterministic.
func (s *Store) List() ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Invoice, 0, len(s.invoices))
	for _, rec := range s.invoices {
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Update replaces the record wholesale. ID and CreatedAt survive from the
// stored record, UpdatedAt is stamped; every other field comes from the
// caller. Unknown id is domain.ErrNotFound.
func (s *Store) Update(id string, inv *entity.Invoice) (*entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.invoices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	rec := inv.Clone()
	rec.ID = id
	rec.CreatedAt = prev.CreatedAt
	rec.UpdatedAt = time.Now().UTC()

	s.invoices[id] = rec
	if err := s.persist(); err != nil {
		s.invoices[id] = prev
		return nil, err
	}
	return rec.Clone(), nil
}

// Delete removes the record. Idempotent by identifier: a second call
// reports domain.ErrNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(s.invoices, id)
	if err := s.persist(); err != nil {
		s.invoices[id] = rec
		return err
	}
	return nil
}

// persist dumps the whole dataset to the file. Callers hold the write lock.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.invoices, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("filestore: write %s: %w", s.path, err)
	}
	return nil
}
