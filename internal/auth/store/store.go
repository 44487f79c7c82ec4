package store

import (
	"context"

	"lawpoint/internal/auth/models"
)

// UserStore is interface-driven so the durable and in-memory implementations
// stay swappable without rewiring business code. Emails passed in must
// already be normalized; stores do not re-normalize.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	// Insert persists the record and returns it with ID and CreatedAt
	// assigned by the store. Returns sentinel.ErrConflict when a record with
	// the same email already exists.
	Insert(ctx context.Context, user models.User) (models.User, error)
}
