package sentiment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spacesedan/sentireview/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedScorer_Memoizes(t *testing.T) {
	ctx := context.Background()
	inner := &stubScorer{polarity: 0.25}
	s := NewCachedScorer(inner, cache.NewMemoryCache(time.Minute, time.Minute), "stub", time.Minute)

	for i := 0; i < 3; i++ {
		p, err := s.Polarity(ctx, "nice screen")
		require.NoError(t, err)
		assert.Equal(t, 0.25, p)
	}
	assert.Equal(t, 1, inner.Calls())

	_, err := s.Polarity(ctx, "other text")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.Calls())
}

func TestCachedScorer_DoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	inner := &stubScorer{err: errors.New("timeout")}
	s := NewCachedScorer(inner, cache.NewMemoryCache(time.Minute, time.Minute), "stub", time.Minute)

	_, err := s.Polarity(ctx, "x")
	assert.Error(t, err)
	_, err = s.Polarity(ctx, "x")
	assert.Error(t, err)
	assert.Equal(t, 2, inner.Calls())
}

func TestCachedScorer_IgnoresCorruptEntries(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	require.NoError(t, c.Set(ctx, cache.Key("stub", "x"), []byte("not-a-float"), time.Minute))

	inner := &stubScorer{polarity: -0.4}
	p, err := NewCachedScorer(inner, c, "stub", time.Minute).Polarity(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, -0.4, p)
	assert.Equal(t, 1, inner.Calls())
}

func TestCachedScorer_DeletesCorruptEntries(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	key := cache.Key("stub", "x")
	require.NoError(t, c.Set(ctx, key, []byte("not-a-float"), time.Minute))

	inner := &stubScorer{err: errors.New("backend down")}
	_, err := NewCachedScorer(inner, c, "stub", time.Minute).Polarity(ctx, "x")
	require.Error(t, err)

	_, found := c.Get(ctx, key)
	assert.False(t, found)
}
