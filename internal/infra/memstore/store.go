// Package memstore is the canonical in-process reservation store. Records
// live for the lifetime of the service; there is no durable backend.
package memstore

import (
	"sync"

	"tableline/internal/domain/reservation"
	"tableline/internal/pkg/errs"

	"github.com/google/uuid"
)

type record struct {
	mu  sync.Mutex
	res *reservation.Reservation
}

// Store guards the reservation table with a read-write mutex over the map and
// a per-record mutex for mutation, so writes to unrelated reservations never
// serialize on each other.
type Store struct {
	mu        sync.RWMutex
	records   map[uuid.UUID]*record
	bySession map[string]uuid.UUID
}

func NewStore() *Store {
	return &Store{
		records:   make(map[uuid.UUID]*record),
		bySession: make(map[string]uuid.UUID),
	}
}

func (s *Store) Create(res *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := res.ID()
	if _, exists := s.records[id]; exists {
		return errs.Newf("reservation %s already exists", id)
	}
	s.records[id] = &record{res: res}
	if sid := res.InboundSessionID(); sid != "" {
		s.bySession[sid] = id
	}
	return nil
}

// Find returns a deep copy; callers never hold a reference into the store.
func (s *Store) Find(id uuid.UUID) (*reservation.Reservation, error) {
	rec, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.res.Clone(), nil
}

// FindBySession resolves either the inbound or the outbound session id.
func (s *Store) FindBySession(sessionID string) (*reservation.Reservation, error) {
	s.mu.RLock()
	id, ok := s.bySession[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	return s.Find(id)
}

// Update applies fn to the stored record under its lock. fn must not perform
// external I/O; the coordinator keeps collaborator calls outside this path.
func (s *Store) Update(id uuid.UUID, fn func(*reservation.Reservation) error) error {
	rec, err := s.lookup(id)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return fn(rec.res)
}

// AttachOutboundSession sets the restaurant-facing session id and indexes it.
// Idempotent; a re-initiated call overwrites the previous id.
func (s *Store) AttachOutboundSession(id uuid.UUID, sessionID string) error {
	rec, err := s.lookup(id)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	prev := rec.res.OutboundSessionID()
	rec.res.AttachOutboundSession(sessionID)
	rec.mu.Unlock()

	s.mu.Lock()
	if prev != "" && prev != sessionID {
		delete(s.bySession, prev)
	}
	if sessionID != "" {
		s.bySession[sessionID] = id
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) lookup(id uuid.UUID) (*record, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.ErrReservationNotFound
	}
	return rec, nil
}
