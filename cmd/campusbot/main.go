package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campusbot/internal/api"
	"campusbot/internal/api/handlers"
	"campusbot/internal/bootstrap"
	"campusbot/pkg/config"
	"campusbot/pkg/logger"

	"go.uber.org/zap"
)

// @title BIET Campus Assistant API
// @version 1.0
// @description Answers questions about admissions, fees, placements, courses, facilities and departments.

// @contact.name BIET Admission Office
// @contact.email admissions@bietdvg.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		FilePath:   cfg.Logger.FilePath,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
	}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting campus assistant")

	container, err := bootstrap.NewContainer(context.Background(), cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize chatbot engine", zap.Error(err))
	}
	defer container.Close()

	chatHandler := handlers.NewChatHandler(container.ChatService, appLogger)
	app := api.SetupRouter(chatHandler, api.RouterConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		StaticDir:    cfg.Server.StaticDir,
	}, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
