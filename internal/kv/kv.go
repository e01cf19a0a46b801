package kv

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// opTimeout bounds every Redis round trip so an unreachable server cannot
// stall a request.
const opTimeout = 500 * time.Millisecond

// Client is a Redis marker store that never fails its callers: unreachable
// Redis reads as an absent key and writes are dropped. A nil *Client behaves
// like an empty store.
type Client struct {
	rdb *redis.Client
}

// New connects lazily to the Redis server at addr.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  opTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})}
}

func (c *Client) usable() bool { return c != nil && c.rdb != nil }

// Ping reports whether Redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if !c.usable() {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// Mark records key until ttl elapses. Non-positive ttls are ignored.
func (c *Client) Mark(ctx context.Context, key string, ttl time.Duration) {
	if !c.usable() || ttl <= 0 {
		return
	}
	_ = c.rdb.Set(ctx, key, "", ttl).Err()
}

// Marked reports whether key is currently recorded.
func (c *Client) Marked(ctx context.Context, key string) bool {
	if !c.usable() {
		return false
	}
	n, err := c.rdb.Exists(ctx, key).Result()
	return err == nil && n > 0
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if !c.usable() {
		return nil
	}
	return c.rdb.Close()
}
