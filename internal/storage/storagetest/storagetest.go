// Package storagetest содержит общий набор проверок для реализаций storage.KV.
package storagetest

import (
	"context"
	"testing"

	"github.com/laplogger/internal/storage"
)

// Run проверяет контракт KV: пустое чтение, перезапись, идемпотентное удаление.
func Run(t *testing.T, kv storage.KV) {
	t.Helper()
	ctx := context.Background()

	if v, err := kv.Get(ctx, "missing"); err != nil || v != "" {
		t.Fatalf("Get(missing) = %q, %v; want empty, nil", v, err)
	}
	if err := kv.Set(ctx, "token", "abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, err := kv.Get(ctx, "token"); err != nil || v != "abc" {
		t.Fatalf("Get(token) = %q, %v; want abc", v, err)
	}
	if err := kv.Set(ctx, "token", "def"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _ := kv.Get(ctx, "token"); v != "def" {
		t.Fatalf("Get after overwrite = %q, want def", v)
	}
	if err := kv.Set(ctx, "user", `{"username":"coach"}`); err != nil {
		t.Fatalf("Set user: %v", err)
	}
	if err := kv.Remove(ctx, "token"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := kv.Remove(ctx, "token"); err != nil {
		t.Fatalf("Remove twice: %v", err)
	}
	if v, _ := kv.Get(ctx, "token"); v != "" {
		t.Fatalf("Get after Remove = %q, want empty", v)
	}
	if v, _ := kv.Get(ctx, "user"); v != `{"username":"coach"}` {
		t.Fatalf("Remove(token) touched user: %q", v)
	}
	if err := kv.Remove(ctx, "user"); err != nil {
		t.Fatalf("Remove user: %v", err)
	}
}
