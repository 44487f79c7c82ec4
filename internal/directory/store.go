package directory

import (
	"context"
	"errors"

	"lawpoint/internal/storage"
	"lawpoint/pkg/platform/sentinel"
)

// LawyerStore mirrors the account store split: one durable implementation,
// one in-process fallback, dispatched by the shared connectivity flag.
type LawyerStore interface {
	List(ctx context.Context) ([]Lawyer, error)
	// Insert persists the entry and returns it with ID and timestamps set.
	Insert(ctx context.Context, lawyer Lawyer) (Lawyer, error)
}

// DualStore serves roster reads and writes from whichever backend the
// connectivity flag names. Roster entries created while degraded share the
// account store's fate: gone on restart, never reconciled.
type DualStore struct {
	durable  LawyerStore
	fallback LawyerStore
	conn     *storage.Connectivity
}

func NewDualStore(durable, fallback LawyerStore, conn *storage.Connectivity) *DualStore {
	return &DualStore{durable: durable, fallback: fallback, conn: conn}
}

func (d *DualStore) List(ctx context.Context) ([]Lawyer, error) {
	if d.conn.Connected() {
		lawyers, err := d.durable.List(ctx)
		if !errors.Is(err, sentinel.ErrUnavailable) {
			return lawyers, err
		}
		d.conn.MarkDisconnected(err)
	}
	return d.fallback.List(ctx)
}

func (d *DualStore) Insert(ctx context.Context, lawyer Lawyer) (Lawyer, error) {
	if d.conn.Connected() {
		inserted, err := d.durable.Insert(ctx, lawyer)
		if !errors.Is(err, sentinel.ErrUnavailable) {
			return inserted, err
		}
		d.conn.MarkDisconnected(err)
	}
	return d.fallback.Insert(ctx, lawyer)
}
