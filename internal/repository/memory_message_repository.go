package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/model"
)

// MemoryMessageRepository keeps messages in process memory. Contents are lost
// on restart; it backs STORE_DRIVER=memory and tests.
type MemoryMessageRepository struct {
	mu       sync.RWMutex
	messages []model.ContactMessage
	now      func() time.Time
}

// NewMemoryMessageRepository creates an empty MemoryMessageRepository.
func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{now: time.Now}
}

var _ MessageRepository = (*MemoryMessageRepository)(nil)

// Save appends a copy of msg after assigning its ID and CreatedAt.
func (r *MemoryMessageRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if err := checkRequired(msg); err != nil {
		return err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	msg.ID = id.String()
	msg.CreatedAt = r.now().UTC()
	r.messages = append(r.messages, *msg)
	return nil
}

// List returns copies of all stored messages in insertion order.
func (r *MemoryMessageRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.ContactMessage, 0, len(r.messages))
	for i := range r.messages {
		m := r.messages[i]
		out = append(out, &m)
	}
	return out, nil
}

// Ping always succeeds.
func (r *MemoryMessageRepository) Ping(ctx context.Context) error {
	return nil
}
