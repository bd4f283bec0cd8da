package service

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
)

var (
	// ErrValidation is returned when a required field is missing.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence is returned when the store is unreachable or rejects a read or write.
	ErrPersistence = errors.New("persistence failed")
)

// MessageService defines the business logic for contact messages.
type MessageService interface {
	// Submit stores a new contact message. msg.ID and msg.CreatedAt are
	// populated by the store; values supplied by the caller are discarded.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns every stored message in insertion order.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}
