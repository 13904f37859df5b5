package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/412299-Rodriguez/club-appointments/docs"

	"github.com/412299-Rodriguez/club-appointments/internal/backend"
	"github.com/412299-Rodriguez/club-appointments/internal/config"
	"github.com/412299-Rodriguez/club-appointments/internal/logger"
	"github.com/412299-Rodriguez/club-appointments/internal/server"
)

// @title Club Appointments API
// @version 1.0
// @description Client service for the club training-session booking backend.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	logger.Info("Starting club appointments service")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	rest := backend.NewRest(cfg.BackendURL, cfg.BackendTimeout)
	logger.Info("Booking backend configured", "url", cfg.BackendURL)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	logger.Info("Snapshot cache configured", "addr", cfg.RedisAddr)

	srv := server.New(cfg, rest, rdb)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
