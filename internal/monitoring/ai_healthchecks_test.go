package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type flakyChecker struct {
	healthyAfter int
	calls        int
}

func (f *flakyChecker) HealthCheck(context.Context) bool {
	f.calls++
	return f.calls > f.healthyAfter
}

func TestWaitUntilHealthy(t *testing.T) {
	c := &flakyChecker{healthyAfter: 0}
	assert.NoError(t, WaitUntilHealthy(context.Background(), "remote", c, time.Millisecond, 3))
	assert.Equal(t, 1, c.calls)

	c = &flakyChecker{healthyAfter: 2}
	assert.NoError(t, WaitUntilHealthy(context.Background(), "remote", c, time.Millisecond, 3))
	assert.Equal(t, 3, c.calls)
}

func TestWaitUntilHealthy_GivesUp(t *testing.T) {
	c := &flakyChecker{healthyAfter: 100}
	err := WaitUntilHealthy(context.Background(), "remote", c, time.Millisecond, 3)
	assert.ErrorContains(t, err, "still unhealthy after 3 attempts")
	assert.Equal(t, 3, c.calls)
}

func TestWaitUntilHealthy_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := WaitUntilHealthy(ctx, "remote", &flakyChecker{healthyAfter: 100}, time.Hour, 3)
	assert.ErrorIs(t, err, context.Canceled)
}
