package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/portfolio/backend/internal/config"
)

func TestOpen_Memory(t *testing.T) {
	repo, closeFn, err := Open(context.Background(), config.StoreConfig{Driver: config.DriverMemory})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer closeFn()

	if _, ok := repo.(*MemoryMessageRepository); !ok {
		t.Errorf("expected *MemoryMessageRepository, got %T", repo)
	}
}

// TestOpen_SQLitePersists verifies that messages survive reopening the file.
func TestOpen_SQLitePersists(t *testing.T) {
	ctx := context.Background()
	cfg := config.StoreConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "messages.db"),
	}

	repo, closeFn, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	msg := newMessage("Ada")
	if err := repo.Save(ctx, msg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	closeFn()

	repo, closeFn, err = Open(ctx, cfg)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer closeFn()

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != msg.ID {
		t.Errorf("expected the saved message after reopen, got %+v", got)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, _, err := Open(context.Background(), config.StoreConfig{Driver: "redis"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
