package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexanderJohnD/WealthWise/internal/config"
	"github.com/AlexanderJohnD/WealthWise/internal/database"
	"github.com/AlexanderJohnD/WealthWise/internal/goals"
	"github.com/AlexanderJohnD/WealthWise/internal/logger"
	"github.com/AlexanderJohnD/WealthWise/internal/router"
	"github.com/AlexanderJohnD/WealthWise/internal/validator"
)

// @title           WealthWise API
// @version         1.0
// @description     WealthWise tracks accounts, investments, expenses and savings goals, and summarizes them on a dashboard.

// @host      localhost:3000
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	goalRepo, closeGoals, err := goals.Open(ctx, appConfig)
	if err != nil {
		return fmt.Errorf("failed to open goal store: %w", err)
	}
	defer closeGoals()

	validator.Register()

	server := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router.New(appConfig, dbManager.DB(), goalRepo),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting WealthWise server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
