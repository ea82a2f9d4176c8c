package startup

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/laplogger/internal/logger"
)

// ConnectDBWithRetry подключается к Postgres с повторами, пока не истечёт maxWait.
// logPrefix добавляется к сообщениям лога (например "cli: ").
func ConnectDBWithRetry(ctx context.Context, poolCfg *pgxpool.Config, maxWait time.Duration, logPrefix string) (*pgxpool.Pool, error) {
	deadline := time.Now().Add(maxWait)
	backoff := 500 * time.Millisecond
	for {
		connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		pool, err := pgxpool.NewWithConfig(connCtx, poolCfg)
		cancel()
		if err == nil {
			pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
			err = pool.Ping(pingCtx)
			pingCancel()
			if err == nil {
				return pool, nil
			}
			pool.Close()
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%sconnect to db (gave up after %v): %w", logPrefix, maxWait, err)
		}
		logger.Errorf("%sdb connect failed, retry in %v: %v", logPrefix, backoff, err)
		if err := sleepCtx(ctx, backoff); err != nil {
			return nil, err
		}
		if backoff < 8*time.Second {
			backoff *= 2
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
