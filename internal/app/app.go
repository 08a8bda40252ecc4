package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/config"
	"github.com/triviahub/trivia-api/internal/db/repository"
	"github.com/triviahub/trivia-api/internal/logging"
	"github.com/triviahub/trivia-api/internal/server"
	"github.com/triviahub/trivia-api/internal/trivia"
)

// Application aggregates shared infrastructure (store, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	http       *http.Server
	closeStore func()
}

// New bootstraps the logger, the configured store and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Str("store", cfg.Store.Driver).Msg("starting application bootstrap")

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	handlers := trivia.NewHTTPHandlers(store, logger)
	apiServer := server.New(cfg, logger, handlers)

	return &Application{
		cfg:        cfg,
		logger:     logger,
		http:       apiServer,
		closeStore: closeStore,
	}, nil
}

func openStore(ctx context.Context, cfg *config.App) (trivia.Store, func(), error) {
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Postgres.ConnString())
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		return repository.NewPostgresStore(pool), pool.Close, nil

	case "sqlite":
		store, err := repository.NewSQLiteStore(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return store, func() { _ = store.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.closeStore()
	a.logger.Info().Msg("shutdown complete")
	return nil
}
