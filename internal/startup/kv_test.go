package startup

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/laplogger/internal/config"
	"github.com/laplogger/internal/storage/memory"
	"github.com/laplogger/internal/storage/sqlite"
)

func TestOpenKVMemory(t *testing.T) {
	kv, err := OpenKV(context.Background(), &config.Config{Storage: config.StorageConfig{Backend: config.BackendMemory}}, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	if _, ok := kv.(*memory.Client); !ok {
		t.Fatalf("got %T, want *memory.Client", kv)
	}
}

func TestOpenKVSQLite(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{
		Backend:    config.BackendSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "session.db"),
	}}
	kv, err := OpenKV(context.Background(), cfg, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	if _, ok := kv.(*sqlite.Client); !ok {
		t.Fatalf("got %T, want *sqlite.Client", kv)
	}
	ctx := context.Background()
	if err := kv.Set(ctx, "token", "abc"); err != nil {
		t.Fatal(err)
	}
	if v, _ := kv.Get(ctx, "token"); v != "abc" {
		t.Fatalf("Get = %q", v)
	}
}

func TestOpenKVUnknownBackend(t *testing.T) {
	_, err := OpenKV(context.Background(), &config.Config{Storage: config.StorageConfig{Backend: "floppy"}}, time.Second)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenKVRedisGivesUp(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Backend: config.BackendRedis},
		Redis:   config.RedisConfig{URL: "redis://127.0.0.1:1/0"},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := OpenKV(ctx, cfg, 0); err == nil {
		t.Fatal("expected error for unreachable redis")
	}
}
