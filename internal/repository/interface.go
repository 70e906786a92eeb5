package repository

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// DB checks that the database connection is alive.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact messages. It is append-only: there is
// no update or delete.
type ContactRepository interface {
	// Create stores in and returns the record with its assigned ID and
	// CreatedAt. A failing medium yields a *StorageError, never a partial record.
	Create(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error)

	// List returns every stored message, oldest first.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}
