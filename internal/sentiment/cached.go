package sentiment

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/spacesedan/sentireview/internal/cache"
)

// CachedScorer memoizes another scorer. Keys are namespaced by backend so
// scores from different models never mix.
type CachedScorer struct {
	next      PolarityScorer
	cache     cache.Cache
	namespace string
	ttl       time.Duration
}

func NewCachedScorer(next PolarityScorer, c cache.Cache, namespace string, ttl time.Duration) *CachedScorer {
	return &CachedScorer{next: next, cache: c, namespace: namespace, ttl: ttl}
}

func (s *CachedScorer) Polarity(ctx context.Context, text string) (float64, error) {
	key := cache.Key(s.namespace, text)
	if raw, ok := s.cache.Get(ctx, key); ok {
		if p, err := strconv.ParseFloat(string(raw), 64); err == nil {
			return p, nil
		}
		slog.Warn("[CachedScorer] Discarding unreadable cache entry", slog.String("key", key))
		if err := s.cache.Delete(ctx, key); err != nil {
			slog.Warn("[CachedScorer] Failed to delete cache entry",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}

	p, err := s.next.Polarity(ctx, text)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Set(ctx, key, []byte(strconv.FormatFloat(p, 'g', -1, 64)), s.ttl); err != nil {
		slog.Warn("[CachedScorer] Failed to store score",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
	return p, nil
}
