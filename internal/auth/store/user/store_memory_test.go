package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"lawpoint/internal/auth/models"
	"lawpoint/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Memory
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) TestInsertAssignsIdentity() {
	inserted, err := s.store.Insert(context.Background(), models.User{
		Email:        "jane.doe@example.com",
		PasswordHash: "digest",
		Name:         "Jane Doe",
	})
	s.Require().NoError(err)

	s.NotEmpty(inserted.ID)
	s.False(inserted.CreatedAt.IsZero())

	byEmail, err := s.store.FindByEmail(context.Background(), "jane.doe@example.com")
	s.Require().NoError(err)
	s.Equal(inserted, byEmail)

	byID, err := s.store.FindByID(context.Background(), inserted.ID)
	s.Require().NoError(err)
	s.Equal(inserted, byID)
}

func (s *MemoryStoreSuite) TestLookupMisses() {
	_, err := s.store.FindByEmail(context.Background(), "missing@example.com")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindByID(context.Background(), "no-such-id")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestDuplicateEmailRejected() {
	_, err := s.store.Insert(context.Background(), models.User{Email: "jane@example.com", Name: "Jane"})
	s.Require().NoError(err)

	_, err = s.store.Insert(context.Background(), models.User{Email: "jane@example.com", Name: "Impostor"})
	s.Require().ErrorIs(err, sentinel.ErrConflict)
}

// TestConcurrentInsertsSerialize drives many racing inserts for one email and
// requires exactly one winner; the write lock is the only thing standing
// between this and duplicate accounts.
func (s *MemoryStoreSuite) TestConcurrentInsertsSerialize() {
	const racers = 16

	var g errgroup.Group
	results := make([]error, racers)
	for i := 0; i < racers; i++ {
		i := i
		g.Go(func() error {
			_, err := s.store.Insert(context.Background(), models.User{
				Email: "contested@example.com",
				Name:  "Racer",
			})
			results[i] = err
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	winners := 0
	for _, err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, sentinel.ErrConflict):
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, winners)
}
