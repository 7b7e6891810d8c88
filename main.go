package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/clipfeed/backend/internal/config"
	"github.com/clipfeed/backend/internal/logger"
)

// @title           ClipFeed API
// @version         1.0
// @description     API server for the ClipFeed video-sharing application

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx := context.Background()

	// Bootstrap logger; replaced once configuration is loaded
	bootstrapLogger, err := logger.NewService(&logger.Config{Level: "info"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	configService := config.NewConfigService(bootstrapLogger)
	cfg, err := configService.Load(".")
	if err != nil {
		bootstrapLogger.LogFatal(err, "Failed to load configuration")
	}

	loggerService, err := logger.NewService(&cfg.Logging)
	if err != nil {
		bootstrapLogger.LogFatal(err, "Failed to initialize logger")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		loggerService.LogInfo("Received shutdown signal", nil)
		cancel()
	}()

	app, err := NewApp(ctx, cfg, loggerService)
	if err != nil {
		loggerService.LogFatal(err, "Failed to initialize application")
	}

	if err := app.Run(); err != nil {
		log.Printf("Application error: %v", err)
	}

	<-ctx.Done()

	if err := app.Shutdown(); err != nil {
		fmt.Printf("Error during shutdown: %v\n", err)
		os.Exit(1)
	}
}
