package cache

import (
	"fmt"
	"time"

	"github.com/spacesedan/sentireview/config"
	"github.com/spacesedan/sentireview/internal/clients"
)

const memoryCleanupInterval = 10 * time.Minute

// Open builds the cache named by cfg.Backend. It returns a nil Cache for
// "none"; the returned close func is always safe to call.
func Open(cfg config.CacheConfig) (Cache, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case "", "none":
		return nil, noop, nil
	case "memory":
		return NewMemoryCache(cfg.TTL, memoryCleanupInterval), noop, nil
	case "valkey":
		client, err := clients.NewValkeyClient(clients.ValkeyOptions{
			Address: cfg.Valkey.Address,
			TLS:     cfg.Valkey.TLS,
		})
		if err != nil {
			return nil, noop, err
		}
		c := NewValkeyCache(client)
		return c, c.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
