package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/laplogger/internal/logger"
	"github.com/laplogger/migrations"
)

// Client хранит KV в таблице client_kv. Удобно, когда несколько рабочих мест тренера делят одну базу.
type Client struct {
	pool *pgxpool.Pool
}

// New оборачивает готовый пул (см. startup.ConnectDBWithRetry) и применяет миграции.
func New(ctx context.Context, pool *pgxpool.Pool) (*Client, error) {
	c := &Client{pool: pool}
	if err := c.migrate(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) migrate(ctx context.Context) error {
	entries, err := migrations.Files.ReadDir(".")
	if err != nil {
		return fmt.Errorf("postgres migrations: %w", err)
	}
	for _, e := range entries {
		data, err := migrations.Files.ReadFile(e.Name())
		if err != nil {
			return fmt.Errorf("read migration %s: %w", e.Name(), err)
		}
		if _, err := c.pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("run migration %s: %w", e.Name(), err)
		}
	}
	return nil
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	defer logger.DeferLogDuration("kv.Get", time.Now())()
	var val string
	err := c.pool.QueryRow(ctx, `SELECT value FROM client_kv WHERE key = $1`, key).Scan(&val)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("kv.Get: %w", err)
	}
	return val, nil
}

func (c *Client) Set(ctx context.Context, key, value string) error {
	defer logger.DeferLogDuration("kv.Set", time.Now())()
	_, err := c.pool.Exec(ctx,
		`INSERT INTO client_kv (key, value, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("kv.Set: %w", err)
	}
	return nil
}

func (c *Client) Remove(ctx context.Context, key string) error {
	defer logger.DeferLogDuration("kv.Remove", time.Now())()
	if _, err := c.pool.Exec(ctx, `DELETE FROM client_kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("kv.Remove: %w", err)
	}
	return nil
}

// Close закрывает пул.
func (c *Client) Close() error {
	c.pool.Close()
	return nil
}
