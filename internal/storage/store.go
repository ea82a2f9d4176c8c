package storage

import "context"

// KV описывает долговременное хранилище ключ-значение, в котором клиент держит токен и профиль между запусками.
// Get для отсутствующего ключа возвращает "" и nil (как go-redis c redis.Nil, приведённым к пустой строке).
// Реализации: memory.Client (тесты, -dev), sqlite.Client (по умолчанию в CLI), redis.Client, postgres.Client.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
