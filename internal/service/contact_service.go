package service

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates raw and, only if it is valid, stores it. The returned
	// record carries the store-assigned ID and CreatedAt. Validation failures
	// are *validation.ValidationError; persistence failures wrap
	// *repository.StorageError.
	Submit(ctx context.Context, raw map[string]any) (*model.ContactMessage, error)

	// List returns every stored contact message, oldest first.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}
