package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/sentireview/config"
	"github.com/spacesedan/sentireview/internal/cli"
	"github.com/spacesedan/sentireview/internal/logging"
)

func main() {
	config.LoadEnv(config.AppEnv())
	logging.InitLogger(os.Getenv("SENTIREVIEW_LOG_LEVEL"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		slog.Error("[Main] sentireview failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
