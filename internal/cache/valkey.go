package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/spacesedan/sentireview/internal/clients"
)

// ValkeyCache stores entries in Valkey so scores survive across runs.
type ValkeyCache struct {
	client *clients.ValkeyClient
}

func NewValkeyCache(client *clients.ValkeyClient) *ValkeyCache {
	return &ValkeyCache{client: client}
}

// Get treats Valkey errors as misses.
func (c *ValkeyCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, found, err := c.client.Get(ctx, key)
	if err != nil {
		slog.Warn("[ValkeyCache] Get failed, treating as miss",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}
	return value, found
}

func (c *ValkeyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.SetEx(ctx, key, value, ttl)
}

func (c *ValkeyCache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, key)
}

// Clear drops every sentireview key, leaving unrelated keys alone.
func (c *ValkeyCache) Clear(ctx context.Context) error {
	return c.client.DeletePrefix(ctx, keyPrefix)
}

func (c *ValkeyCache) Close() error {
	c.client.Close()
	return nil
}
