package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// messageServiceImpl is the production implementation of MessageService.
type messageServiceImpl struct {
	repo repository.MessageRepository
}

// NewMessageService creates a MessageService backed by the given repository.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageServiceImpl{repo: repo}
}

// Submit checks the required fields and persists the message.
func (s *messageServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if missing := msg.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}

	msg.ID = ""
	msg.CreatedAt = time.Time{}
	if err := s.repo.Save(ctx, msg); err != nil {
		if errors.Is(err, repository.ErrMissingField) {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return fmt.Errorf("%w: save message: %w", ErrPersistence, err)
	}
	return nil
}

// List returns all stored messages. An empty store yields an empty slice.
func (s *messageServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list messages: %w", ErrPersistence, err)
	}
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	return messages, nil
}
