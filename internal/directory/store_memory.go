package directory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps roster entries in insertion order for the lifetime of the
// process. Writes are serialized behind the mutex; reads copy the slice so
// callers never alias internal state.
type MemoryStore struct {
	mu      sync.RWMutex
	lawyers []Lawyer
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) List(_ context.Context) ([]Lawyer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Lawyer{}, s.lawyers...), nil
}

func (s *MemoryStore) Insert(_ context.Context, lawyer Lawyer) (Lawyer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	lawyer.ID = uuid.NewString()
	lawyer.CreatedAt = now
	lawyer.UpdatedAt = now
	s.lawyers = append(s.lawyers, lawyer)
	return lawyer, nil
}
