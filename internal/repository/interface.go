package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// MessageRepository is the persistence interface for contact messages.
// Implementations assign ID and CreatedAt exactly once, inside Save.
type MessageRepository interface {
	DB

	// Save validates the required fields, assigns msg.ID and msg.CreatedAt and
	// persists the message.
	Save(ctx context.Context, msg *model.ContactMessage) error

	// List returns every stored message in insertion order.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}
