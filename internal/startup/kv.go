package startup

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/laplogger/internal/config"
	"github.com/laplogger/internal/logger"
	"github.com/laplogger/internal/storage"
	"github.com/laplogger/internal/storage/memory"
	"github.com/laplogger/internal/storage/postgres"
	"github.com/laplogger/internal/storage/sqlite"
)

// OpenKV открывает хранилище сессии по cfg.Storage.Backend.
// Вызывающий закрывает результат через Close.
func OpenKV(ctx context.Context, cfg *config.Config, maxWait time.Duration) (storage.KV, error) {
	logger.Debugf("storage backend: %s", cfg.Storage.Backend)
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendRedis:
		kv, err := ConnectRedisWithRetry(ctx, cfg.Redis.URL, cfg.Storage.KeyPrefix, maxWait, "storage: ")
		if err != nil {
			return nil, err
		}
		return kv, nil
	case config.BackendPostgres:
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("parse db config: %w", err)
		}
		poolCfg.MaxConns = int32(cfg.DBMaxConnections())
		pool, err := ConnectDBWithRetry(ctx, poolCfg, maxWait, "storage: ")
		if err != nil {
			return nil, err
		}
		kv, err := postgres.New(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return kv, nil
	case config.BackendSQLite, "":
		path := cfg.Storage.SQLitePath
		if path == "" {
			p, err := sqlite.DefaultPath()
			if err != nil {
				return nil, fmt.Errorf("sqlite path: %w", err)
			}
			path = p
		}
		return sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
