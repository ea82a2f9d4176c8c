package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix задаёт пространство имён ключей клиента (laplogger:token, laplogger:user).
const DefaultKeyPrefix = "laplogger:"

type Client struct {
	cli    *redis.Client
	prefix string
}

// New подключается по URL и проверяет соединение. prefix пустой: используется DefaultKeyPrefix.
func New(ctx context.Context, url, prefix string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis parse url: %w", err)
	}
	cli := redis.NewClient(opts)
	if err := cli.Ping(ctx).Err(); err != nil {
		if closeErr := cli.Close(); closeErr != nil {
			return nil, fmt.Errorf("redis ping: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Client{cli: cli, prefix: prefix}, nil
}

func (c *Client) Close() error {
	return c.cli.Close()
}

// Get возвращает значение; отсутствующий ключ: пустая строка без ошибки.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.cli.Get(ctx, c.prefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// Set хранит значение без TTL: сессия живёт до явного выхода или 401 от сервера.
func (c *Client) Set(ctx context.Context, key, value string) error {
	return c.cli.Set(ctx, c.prefix+key, value, 0).Err()
}

func (c *Client) Remove(ctx context.Context, key string) error {
	return c.cli.Del(ctx, c.prefix+key).Err()
}
