package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/exp/slog"

	"gotodo/internal/app/server/api"
	"gotodo/internal/app/server/config"
	"gotodo/internal/domain/token"
	"gotodo/internal/infrastructure/storage/postgres"
	"gotodo/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

// Run opens the storage pool, wires the API and serves until SIGINT or
// SIGTERM, then shuts down gracefully.
func Run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := postgres.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer storage.Close()

	log.Info("database connection established")

	tokens := token.NewService([]byte(cfg.Token.Secret), cfg.Token.TTL)

	registry := prometheus.NewRegistry()
	collect := metrics.NewCollector(registry)

	repos := api.Repositories{
		Users: postgres.NewUserRepository(storage.Pool(), log),
		Todos: postgres.NewTodoRepository(storage.Pool(), log),
	}

	mux := api.New(repos, tokens, collect, metrics.Handler(registry), log)

	srv := &http.Server{
		Addr:         cfg.Server.RunAddress,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", cfg.Server.RunAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
