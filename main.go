package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fairway-collective/league-engine/app"
	"github.com/fairway-collective/league-engine/app/observability/attr"
	"github.com/fairway-collective/league-engine/config"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Error("Failed to load config", attr.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := &app.App{}
	if err := engine.Initialize(ctx, cfg, logger); err != nil {
		logger.Error("Failed to initialize", attr.Error(err))
		os.Exit(1)
	}

	if err := engine.Run(ctx); err != nil {
		logger.Error("Engine exited with error", attr.Error(err))
		os.Exit(1)
	}
	logger.Info("Engine stopped")
}
