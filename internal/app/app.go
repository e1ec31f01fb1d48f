// Package app provides the application lifecycle for the portal API server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/newsdesk/portal/internal/api"
	"github.com/newsdesk/portal/internal/config"
	"github.com/newsdesk/portal/internal/logger"
	"github.com/newsdesk/portal/internal/metrics"
	"github.com/newsdesk/portal/internal/storage"
	"github.com/newsdesk/portal/internal/storage/memory"
	"github.com/newsdesk/portal/internal/storage/postgres"
)

// App represents the portal application with all its dependencies
type App struct {
	config     *config.Config
	logger     logger.Logger
	store      storage.Store
	httpServer *http.Server
	version    string
}

// Options contains configuration for creating a new App
type Options struct {
	ConfigPath string
	Version    string
}

// New creates a new App instance with all dependencies initialized
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	appLogger = appLogger.With(
		logger.String("service", "portal"),
		logger.String("version", opts.Version),
	)

	store, err := openStore(cfg)
	if err != nil {
		_ = appLogger.Sync()
		return nil, err
	}
	appLogger.Info("Storage ready", logger.String("driver", cfg.Storage.Driver))

	router := api.NewRouter(store, cfg, appLogger, metrics.NewMetrics())
	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{
		config:     cfg,
		logger:     appLogger,
		store:      store,
		httpServer: httpServer,
		version:    opts.Version,
	}, nil
}

// openStore builds the storage backend selected by the config
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverPostgres:
		store, err := postgres.Connect(postgres.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Run starts the HTTP server and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server",
			logger.String("address", a.config.Server.Address),
			logger.Bool("debug", a.config.Debug),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	return a.waitForShutdown(ctx, serverErr)
}

// waitForShutdown blocks until a signal, context cancellation or server error
func (a *App) waitForShutdown(ctx context.Context, serverErr chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		a.logger.Info("Shutting down gracefully", logger.String("signal", sig.String()))
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully", logger.String("reason", "context canceled"))
	case err := <-serverErr:
		if err != nil {
			a.logger.Error("Server error", logger.Error(err))
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server shutdown error", logger.Error(err))
		return err
	}

	a.logger.Info("HTTP server stopped")
	return nil
}

// Close cleans up resources
func (a *App) Close() error {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("Failed to close store", logger.Error(err))
		}
	}
	return a.logger.Sync()
}

// Logger returns the application logger
func (a *App) Logger() logger.Logger {
	return a.logger
}

// Store returns the storage backend, used by cmd/seed
func (a *App) Store() storage.Store {
	return a.store
}
