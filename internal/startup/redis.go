package startup

import (
	"context"
	"fmt"
	"time"

	"github.com/laplogger/internal/logger"
	redisstorage "github.com/laplogger/internal/storage/redis"
)

// ConnectRedisWithRetry подключается к Redis с повторами, пока не истечёт maxWait.
func ConnectRedisWithRetry(ctx context.Context, redisURL, prefix string, maxWait time.Duration, logPrefix string) (*redisstorage.Client, error) {
	deadline := time.Now().Add(maxWait)
	backoff := 500 * time.Millisecond
	for {
		connCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		client, err := redisstorage.New(connCtx, redisURL, prefix)
		cancel()
		if err == nil {
			return client, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%sredis (gave up after %v): %w", logPrefix, maxWait, err)
		}
		logger.Errorf("%sredis connect failed, retry in %v: %v", logPrefix, backoff, err)
		if err := sleepCtx(ctx, backoff); err != nil {
			return nil, err
		}
		if backoff < 8*time.Second {
			backoff *= 2
		}
	}
}
