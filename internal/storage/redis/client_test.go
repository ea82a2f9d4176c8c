package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/laplogger/internal/storage/storagetest"
)

// Нужен живой Redis: LAPLOGGER_TEST_REDIS_URL=redis://localhost:6379/15
func TestClient(t *testing.T) {
	url := os.Getenv("LAPLOGGER_TEST_REDIS_URL")
	if url == "" {
		t.Skip("LAPLOGGER_TEST_REDIS_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := New(ctx, url, "laplogger-test:"+uuid.NewString()+":")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()
	storagetest.Run(t, c)
}

func TestNewBadURL(t *testing.T) {
	if _, err := New(context.Background(), "://nope", ""); err == nil {
		t.Fatal("New with bad url: want error")
	}
}
