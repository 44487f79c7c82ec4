package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"lawpoint/internal/auth/models"
	"lawpoint/pkg/platform/sentinel"
)

// Memory is the in-process fallback account store. It exists so the service
// degrades to "usable, ephemeral" instead of "unavailable" when the durable
// backend cannot be reached; everything here is discarded on restart.
//
// All mutations go through a single write lock, which is the serialization
// point that keeps two concurrent signups for the same email from both
// passing the duplicate check.
type Memory struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
	byID    map[string]models.User
}

func NewMemory() *Memory {
	return &Memory{
		byEmail: make(map[string]models.User),
		byID:    make(map[string]models.User),
	}
}

func (s *Memory) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return models.User{}, sentinel.ErrNotFound
}

func (s *Memory) FindByID(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return models.User{}, sentinel.ErrNotFound
}

func (s *Memory) Insert(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the write lock; the service's pre-check raced.
	if _, ok := s.byEmail[user.Email]; ok {
		return models.User{}, sentinel.ErrConflict
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
	return user, nil
}
