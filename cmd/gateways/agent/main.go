package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	config "github.com/meetflow/followup/config/agent"
	"github.com/meetflow/followup/gateways/agent"
	"github.com/meetflow/followup/pkg/logger"
)

func main() {
	log := logger.New(logger.Config{
		Level:      slog.LevelInfo,
		Output:     os.Stderr,
		AddSource:  false,
		JSONFormat: false,
	})

	cfg := config.MustLoad()
	log.Info("configuration loaded",
		slog.Int("port", cfg.Port),
		slog.Bool("offline", cfg.Offline()),
		slog.String("model", cfg.OpenAI.Model),
		slog.String("operator", cfg.Operator.Email))

	ctx := logger.WithContext(context.Background(), log)
	rootCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(rootCtx, cfg, log); err != nil {
		log.Error("agent gateway terminated", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	srv, err := agent.New(cfg, log)
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}
