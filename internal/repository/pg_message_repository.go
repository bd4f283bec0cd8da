package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PostgreSQL error codes raised by the contact_messages constraints.
const (
	pgNotNullViolation = "23502"
	pgCheckViolation   = "23514"
)

// PgMessageRepository is the PostgreSQL implementation of MessageRepository.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

// Ensure PgMessageRepository implements MessageRepository at compile time.
var _ MessageRepository = (*PgMessageRepository)(nil)

// Save inserts a new contact_messages row. The id is a UUIDv7 so that
// (created_at, id) follows insertion order; created_at comes from the
// column default via RETURNING.
func (r *PgMessageRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if err := checkRequired(msg); err != nil {
		return err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate id: %w", err)
	}

	err = r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		id.String(), msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == pgNotNullViolation || pgErr.Code == pgCheckViolation) {
			return fmt.Errorf("%w: %s", ErrMissingField, pgErr.ConstraintName)
		}
		return err
	}
	return nil
}

// List returns all contact messages, oldest first.
func (r *PgMessageRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, created_at
		 FROM contact_messages
		 ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []*model.ContactMessage{}
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// Ping checks that the database is reachable.
func (r *PgMessageRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
