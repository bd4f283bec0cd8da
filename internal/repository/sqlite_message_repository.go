package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/model"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS contact_messages (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL CHECK (name <> ''),
	email      TEXT NOT NULL CHECK (email <> ''),
	subject    TEXT NOT NULL CHECK (subject <> ''),
	message    TEXT NOT NULL CHECK (message <> ''),
	created_at TEXT NOT NULL
)`

// OpenSQLite opens (or creates) the SQLite database at path and ensures the
// contact_messages table exists. Use ":memory:" for a throwaway database.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

// SQLiteMessageRepository is the SQLite implementation of MessageRepository.
type SQLiteMessageRepository struct {
	db *sql.DB
}

// NewSQLiteMessageRepository creates a SQLiteMessageRepository on an opened database.
func NewSQLiteMessageRepository(db *sql.DB) *SQLiteMessageRepository {
	return &SQLiteMessageRepository{db: db}
}

var _ MessageRepository = (*SQLiteMessageRepository)(nil)

// Save inserts a new row; insertion order is kept by the seq column.
func (r *SQLiteMessageRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if err := checkRequired(msg); err != nil {
		return err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate id: %w", err)
	}
	createdAt := time.Now().UTC()

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), msg.Name, msg.Email, msg.Subject, msg.Message, createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}
	msg.ID = id.String()
	msg.CreatedAt = createdAt
	return nil
}

// List returns all rows ordered by insertion.
func (r *SQLiteMessageRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, subject, message, created_at
		 FROM contact_messages
		 ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []*model.ContactMessage{}
	for rows.Next() {
		var m model.ContactMessage
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &createdAt); err != nil {
			return nil, err
		}
		if m.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at of %s: %w", m.ID, err)
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// Ping checks that the database file is usable.
func (r *SQLiteMessageRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
