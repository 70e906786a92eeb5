package repository

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
// IDs come from the contacts.id BIGSERIAL sequence, so concurrent inserts
// never share an ID.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a contacts row and fills ID and CreatedAt from the
// RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
	if r.pool == nil {
		return nil, storageErr("create", ErrStorageUnavailable)
	}
	msg := &model.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		in.Name, in.Email, in.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return nil, storageErr("create", err)
	}
	return msg, nil
}

// List returns all contacts in insertion order.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if r.pool == nil {
		return nil, storageErr("list", ErrStorageUnavailable)
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, message, created_at
		 FROM contacts
		 ORDER BY id ASC`)
	if err != nil {
		return nil, storageErr("list", err)
	}
	defer rows.Close()

	messages := []*model.ContactMessage{}
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, storageErr("list", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list", err)
	}
	return messages, nil
}
