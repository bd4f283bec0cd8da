package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockMessageRepository — func-field stub for testing
// ---------------------------------------------------------------------------

type mockMessageRepository struct {
	saveFunc func(ctx context.Context, msg *model.ContactMessage) error
	listFunc func(ctx context.Context) ([]*model.ContactMessage, error)
	saved    int
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	m.saved++
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockMessageRepository) Ping(ctx context.Context) error { return nil }

func validMessage() *model.ContactMessage {
	return &model.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hi",
		Message: "Hello there",
	}
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestMessageService_Submit_Success(t *testing.T) {
	var saved *model.ContactMessage
	mock := &mockMessageRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			saved = msg
			msg.ID = "generated-id"
			msg.CreatedAt = time.Now()
			return nil
		},
	}
	svc := NewMessageService(mock)

	msg := validMessage()
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != msg {
		t.Fatal("expected Save to be called with the submitted message")
	}
	if msg.ID != "generated-id" {
		t.Errorf("expected ID from store, got %q", msg.ID)
	}
}

// TestMessageService_Submit_ClearsCallerAssignedFields verifies that id and
// createdAt are never taken from the caller.
func TestMessageService_Submit_ClearsCallerAssignedFields(t *testing.T) {
	var seenID string
	var seenCreatedAt time.Time
	mock := &mockMessageRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			seenID = msg.ID
			seenCreatedAt = msg.CreatedAt
			return nil
		},
	}
	svc := NewMessageService(mock)

	msg := validMessage()
	msg.ID = "caller-id"
	msg.CreatedAt = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seenID != "" {
		t.Errorf("expected ID cleared before Save, got %q", seenID)
	}
	if !seenCreatedAt.IsZero() {
		t.Errorf("expected CreatedAt cleared before Save, got %v", seenCreatedAt)
	}
}

func TestMessageService_Submit_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		apply func(m *model.ContactMessage)
	}{
		{"name", func(m *model.ContactMessage) { m.Name = "" }},
		{"email", func(m *model.ContactMessage) { m.Email = "" }},
		{"subject", func(m *model.ContactMessage) { m.Subject = "" }},
		{"message", func(m *model.ContactMessage) { m.Message = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockMessageRepository{}
			svc := NewMessageService(mock)

			msg := validMessage()
			tt.apply(msg)
			err := svc.Submit(context.Background(), msg)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if mock.saved != 0 {
				t.Errorf("expected Save not to be called, called %d times", mock.saved)
			}
		})
	}
}

func TestMessageService_Submit_StoreRejectsAsValidation(t *testing.T) {
	mock := &mockMessageRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return fmt.Errorf("%w: contact_messages_name_check", repository.ErrMissingField)
		},
	}
	svc := NewMessageService(mock)

	err := svc.Submit(context.Background(), validMessage())
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if errors.Is(err, ErrPersistence) {
		t.Error("did not expect ErrPersistence for a store-side validation failure")
	}
}

func TestMessageService_Submit_RepositoryError(t *testing.T) {
	cause := errors.New("db write failed")
	mock := &mockMessageRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return cause
		},
	}
	svc := NewMessageService(mock)

	err := svc.Submit(context.Background(), validMessage())
	if !errors.Is(err, ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestMessageService_List_ReturnsMessages(t *testing.T) {
	want := []*model.ContactMessage{
		{ID: "1", Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello", CreatedAt: time.Now()},
	}
	mock := &mockMessageRepository{
		listFunc: func(ctx context.Context) ([]*model.ContactMessage, error) {
			return want, nil
		},
	}
	svc := NewMessageService(mock)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMessageService_List_NilBecomesEmpty(t *testing.T) {
	svc := NewMessageService(&mockMessageRepository{})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Error("expected non-nil empty slice, got nil")
	}
}

func TestMessageService_List_RepositoryError(t *testing.T) {
	mock := &mockMessageRepository{
		listFunc: func(ctx context.Context) ([]*model.ContactMessage, error) {
			return nil, errors.New("db read failed")
		},
	}
	svc := NewMessageService(mock)

	_, err := svc.List(context.Background())
	if !errors.Is(err, ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Service over the in-memory store
// ---------------------------------------------------------------------------

func TestMessageService_SubmitThenList(t *testing.T) {
	svc := NewMessageService(repository.NewMemoryMessageRepository())
	ctx := context.Background()

	msg := validMessage()
	if err := svc.Submit(ctx, msg); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if msg.ID == "" || msg.CreatedAt.IsZero() {
		t.Fatalf("expected id and createdAt, got %+v", msg)
	}

	bad := validMessage()
	bad.Name = ""
	if err := svc.Submit(ctx, bad); err == nil {
		t.Fatal("expected submit with empty name to fail")
	}

	got, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 message, got %d", len(got))
	}
	if got[0].ID != msg.ID || got[0].Name != "Ada" {
		t.Errorf("expected stored Ada message, got %+v", got[0])
	}
}
