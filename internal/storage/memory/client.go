package memory

import (
	"context"
	"sync"
)

// Client хранит KV в памяти процесса. Переживает только время жизни процесса.
type Client struct {
	mu   sync.RWMutex
	vals map[string]string
}

func New() *Client {
	return &Client{vals: make(map[string]string)}
}

func (c *Client) Close() error { return nil }

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals[key], nil
}

func (c *Client) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals[key] = value
	return nil
}

func (c *Client) Remove(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.vals, key)
	return nil
}

// Len возвращает число ключей (для тестов).
func (c *Client) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vals)
}
