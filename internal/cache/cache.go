package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const keyPrefix = "sentireview:v1:"

// Cache defines the interface for caching
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Key builds a namespaced cache key from the hash of text
func Key(namespace, text string) string {
	hash := sha256.Sum256([]byte(text))
	return keyPrefix + namespace + ":" + hex.EncodeToString(hash[:])
}
