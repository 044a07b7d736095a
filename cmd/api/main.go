package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pantrytoplate/backend/config"
	"github.com/pantrytoplate/backend/internal/database"
	"github.com/pantrytoplate/backend/internal/logger"
	"github.com/pantrytoplate/backend/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.New(cfg)
		if err != nil {
			// History and favorites will fail per request; generation and the
			// health check stay up.
			zlog.Warn("failed to connect to persistence store", zap.Error(err))
			db = nil
		}
	} else {
		zlog.Warn("DATABASE_URL not set, persistence disabled")
	}

	if cfg.OpenRouterAPIKey == "" {
		zlog.Warn("OPENROUTER_API_KEY not set, generation requests will fail")
	}

	srv := server.New(cfg, db, zlog)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		zlog.Info("received signal", zap.String("signal", sig.String()))
	}

	zlog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("server shutdown error", zap.Error(err))
	}
	zlog.Info("server stopped")
}
