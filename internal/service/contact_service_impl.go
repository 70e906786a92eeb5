package service

import (
	"context"
	"log/slog"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/validation"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit runs validation before touching the store, so invalid input can
// never produce a partial write. Storage failures are not retried.
func (s *contactServiceImpl) Submit(ctx context.Context, raw map[string]any) (*model.ContactMessage, error) {
	in, err := validation.ParseContact(raw)
	if err != nil {
		return nil, err
	}
	msg, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.Debug("contact stored", "id", msg.ID)
	return msg, nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []*model.ContactMessage{}
	}
	return msgs, nil
}
