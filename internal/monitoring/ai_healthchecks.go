package monitoring

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	HEALTHCHECK_INTERVAL = 5 * time.Second
	HEALTHCHECK_ATTEMPTS = 6
)

// HealthChecker is implemented by scorers backed by a service that may not be up yet.
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// WaitUntilHealthy polls checker until it reports healthy, giving up after
// attempts checks.
func WaitUntilHealthy(ctx context.Context, name string, checker HealthChecker, interval time.Duration, attempts int) error {
	if checker.HealthCheck(ctx) {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 2; attempt <= attempts; attempt++ {
		slog.Warn("[HealthCheck] Backend is unhealthy, waiting...",
			slog.String("backend", name),
			slog.Int("attempt", attempt-1))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if checker.HealthCheck(ctx) {
			slog.Info("[HealthCheck] Backend is healthy", slog.String("backend", name))
			return nil
		}
	}
	return fmt.Errorf("[HealthCheck] %s still unhealthy after %d attempts", name, attempts)
}
