package repository

import (
	"context"
	"sync"
	"time"

	"github.com/folio/backend/internal/model"
)

// MemoryContactRepository keeps contacts in process memory. It exists for
// tests; the server always runs against PostgreSQL.
type MemoryContactRepository struct {
	mu      sync.RWMutex
	nextID  int64
	records []model.ContactMessage
	now     func() time.Time

	// FailWith, when set, makes every call return it wrapped in a StorageError.
	FailWith error
}

var _ ContactRepository = (*MemoryContactRepository)(nil)

// NewMemoryContactRepository returns an empty in-memory repository.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{now: func() time.Time { return time.Now().UTC() }}
}

// WithClock replaces the timestamp source.
func (r *MemoryContactRepository) WithClock(now func() time.Time) *MemoryContactRepository {
	r.now = now
	return r
}

func (r *MemoryContactRepository) Create(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageErr("create", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, storageErr("create", r.FailWith)
	}
	r.nextID++
	rec := model.ContactMessage{
		ID:        r.nextID,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: r.now(),
	}
	r.records = append(r.records, rec)
	out := rec
	return &out, nil
}

func (r *MemoryContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageErr("list", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.FailWith != nil {
		return nil, storageErr("list", r.FailWith)
	}
	out := make([]*model.ContactMessage, len(r.records))
	for i := range r.records {
		rec := r.records[i]
		out[i] = &rec
	}
	return out, nil
}

// Len returns the number of stored records.
func (r *MemoryContactRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
