package cli

import (
	"context"
	"log/slog"

	"github.com/spacesedan/sentireview/internal/models"
	"github.com/spacesedan/sentireview/internal/sinks"
)

func publish(ctx context.Context, a *app, result *models.Report) error {
	out, err := sinks.New(ctx, a.cfg.Sinks)
	if err != nil {
		return err
	}
	if len(out) == 0 {
		return nil
	}
	defer func() {
		if err := sinks.CloseAll(out); err != nil {
			slog.Warn("[CLI] Failed to close sinks", slog.String("error", err.Error()))
		}
	}()

	return sinks.PublishAll(ctx, out, result)
}
