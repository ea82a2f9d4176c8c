package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/laplogger/internal/storage/storagetest"
)

func TestClientInMemory(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()
	storagetest.Run(t, c)
}

func TestClientSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")
	ctx := context.Background()

	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := c.Set(ctx, "token", "persisted"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	c, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer c.Close()
	if v, err := c.Get(ctx, "token"); err != nil || v != "persisted" {
		t.Fatalf("Get after reopen = %q, %v; want persisted", v, err)
	}
}
