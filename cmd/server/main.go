package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"adgroup-go/internal/config"
	"adgroup-go/internal/handler"
	"adgroup-go/pkg/clusterer"
	"adgroup-go/pkg/embedding"
	"adgroup-go/pkg/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/dev.yaml", "Configuration file path")
	flag.Parse()

	if err := run(configPath); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run(configPath string) error {
	manager := config.NewManager()
	cfg, err := manager.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	logger.SetLogger(appLogger)

	provider := embedding.NewProvider(func() (embedding.Encoder, error) {
		return embedding.NewOllamaEncoder(embedding.OllamaConfig{
			BaseURL:   cfg.Embedding.Endpoint,
			Model:     cfg.Embedding.Model,
			Dimension: cfg.Embedding.Dimension,
			Timeout:   time.Duration(cfg.Embedding.Timeout) * time.Second,
		})
	})

	engine := clusterer.NewEngine(clusterer.Options{
		Encoder:   provider,
		Eps:       cfg.Clustering.Eps,
		MinPoints: cfg.Clustering.MinPoints,
	})

	app := fiber.New(fiber.Config{
		AppName:      "adgroup-go",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	})

	controller := handler.NewController(engine)
	controller.RegisterRoutes(app)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		appLogger.Info("Shutdown signal received")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			appLogger.WithError(err).Error("Graceful shutdown failed")
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.WithField("addr", addr).Info("Server starting")
	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	appLogger.Info("Server stopped")
	return nil
}
