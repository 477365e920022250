// Package leadstore persists quote leads. Every store implements
// intake.LeadStore; "not configured" is reported through the SaveResult
// reason code, never an error, so an unwired backend degrades gracefully.
package leadstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stoneworks/lead-intake/internal/intake"
)

// ReasonNotConfigured is returned when a store has no backend to write to.
const ReasonNotConfigured = "not_configured"

// StoredLead is a persisted lead with its assigned identity.
type StoredLead struct {
	ID        string
	CreatedAt time.Time
	Payload   intake.LeadPayload
}

// MemoryStore keeps leads in memory. Used in tests and as the fallback when
// no persistence backend is configured for local development.
type MemoryStore struct {
	mu    sync.RWMutex
	leads map[string]StoredLead
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{leads: make(map[string]StoredLead)}
}

// Save stores a copy of the payload under a fresh ID.
func (s *MemoryStore) Save(ctx context.Context, payload *intake.LeadPayload) (intake.SaveResult, error) {
	lead := StoredLead{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Payload:   *payload,
	}

	s.mu.Lock()
	s.leads[lead.ID] = lead
	s.mu.Unlock()

	return intake.SaveResult{OK: true, ID: lead.ID}, nil
}

// Get returns a stored lead by ID.
func (s *MemoryStore) Get(id string) (StoredLead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lead, ok := s.leads[id]
	return lead, ok
}

// Len reports how many leads have been captured.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

var _ intake.LeadStore = (*MemoryStore)(nil)
