package store

import (
	"context"
	"errors"

	"lawpoint/internal/auth/models"
	"lawpoint/internal/storage"
	"lawpoint/pkg/platform/sentinel"
)

// Dual dispatches every operation to the durable store while the connectivity
// flag is up and to the in-process fallback afterwards. The first durable
// call that reports ErrUnavailable flips the flag and is re-served from the
// fallback, so callers never observe the outage — an availability-over-
// consistency tradeoff. Known limitation: records created while degraded
// live only in this process and are not reconciled if the durable backend
// recovers; uniqueness is scoped to the active backend.
type Dual struct {
	durable  UserStore
	fallback UserStore
	conn     *storage.Connectivity
}

func NewDual(durable, fallback UserStore, conn *storage.Connectivity) *Dual {
	return &Dual{durable: durable, fallback: fallback, conn: conn}
}

func (d *Dual) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if d.conn.Connected() {
		user, err := d.durable.FindByEmail(ctx, email)
		if !errors.Is(err, sentinel.ErrUnavailable) {
			return user, err
		}
		d.conn.MarkDisconnected(err)
	}
	return d.fallback.FindByEmail(ctx, email)
}

func (d *Dual) FindByID(ctx context.Context, id string) (models.User, error) {
	if d.conn.Connected() {
		user, err := d.durable.FindByID(ctx, id)
		if !errors.Is(err, sentinel.ErrUnavailable) {
			return user, err
		}
		d.conn.MarkDisconnected(err)
	}
	return d.fallback.FindByID(ctx, id)
}

func (d *Dual) Insert(ctx context.Context, user models.User) (models.User, error) {
	if d.conn.Connected() {
		inserted, err := d.durable.Insert(ctx, user)
		if !errors.Is(err, sentinel.ErrUnavailable) {
			return inserted, err
		}
		d.conn.MarkDisconnected(err)
	}
	return d.fallback.Insert(ctx, user)
}
