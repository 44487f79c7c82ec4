package directory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawpoint/internal/platform/metrics"
	"lawpoint/internal/storage"
	dErrors "lawpoint/pkg/domain-errors"
	"lawpoint/pkg/platform/sentinel"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryStoreKeepsInsertionOrder(t *testing.T) {
	store := NewMemoryStore()

	for _, name := range []string{"Alice Johnson", "Bob Smith", "Carol White"} {
		_, err := store.Insert(context.Background(), Lawyer{Name: name})
		require.NoError(t, err)
	}

	lawyers, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, lawyers, 3)
	assert.Equal(t, "Alice Johnson", lawyers[0].Name)
	assert.Equal(t, "Carol White", lawyers[2].Name)
	for _, lawyer := range lawyers {
		assert.NotEmpty(t, lawyer.ID)
		assert.False(t, lawyer.CreatedAt.IsZero())
	}
}

func TestMemoryStoreListCopies(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Insert(context.Background(), Lawyer{Name: "Alice Johnson"})
	require.NoError(t, err)

	first, err := store.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", second[0].Name)
}

func TestServiceCreateValidatesName(t *testing.T) {
	svc := NewService(NewMemoryStore(), discardLogger(), metrics.NewForTesting())

	_, err := svc.Create(context.Background(), CreateLawyerRequest{Name: "   "})
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))

	lawyer, err := svc.Create(context.Background(), CreateLawyerRequest{
		Name:      "  Alice Johnson ",
		Specialty: "Family Law",
		Location:  "New York",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", lawyer.Name)
	assert.Equal(t, "Family Law", lawyer.Specialty)
}

type unavailableStore struct{}

func (unavailableStore) List(context.Context) ([]Lawyer, error) {
	return nil, fmt.Errorf("%w: connection reset", sentinel.ErrUnavailable)
}

func (unavailableStore) Insert(context.Context, Lawyer) (Lawyer, error) {
	return Lawyer{}, fmt.Errorf("%w: connection reset", sentinel.ErrUnavailable)
}

func TestDualStoreDegrades(t *testing.T) {
	conn := storage.NewConnectivity(true, discardLogger(), nil)
	dual := NewDualStore(unavailableStore{}, NewMemoryStore(), conn)

	inserted, err := dual.Insert(context.Background(), Lawyer{Name: "Alice Johnson"})
	require.NoError(t, err)
	assert.False(t, conn.Connected())

	lawyers, err := dual.List(context.Background())
	require.NoError(t, err)
	require.Len(t, lawyers, 1)
	assert.Equal(t, inserted.ID, lawyers[0].ID)
}
