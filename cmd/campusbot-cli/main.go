package main

import (
	"context"
	"os"

	"campusbot/internal/bootstrap"
	"campusbot/internal/cli"
	"campusbot/pkg/config"
	"campusbot/pkg/logger"

	"github.com/fatih/color"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		color.Red("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Keep the terminal readable: only warnings and errors reach stdout.
	appLogger, err := logger.New(logger.Options{
		Level:      "warn",
		FilePath:   cfg.Logger.FilePath,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
	})
	if err != nil {
		color.Red("Failed to initialize logger: %v", err)
		os.Exit(1)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx := context.Background()
	container, err := bootstrap.NewContainer(ctx, cfg, appLogger)
	if err != nil {
		color.Red("Failed to initialize chatbot engine: %v", err)
		os.Exit(1)
	}
	defer container.Close()

	root := cli.NewRootCmd(&cli.App{Chat: container.ChatService})
	if err := root.ExecuteContext(ctx); err != nil {
		color.Red("Error: %v", err)
		container.Close()
		os.Exit(1)
	}
}
