package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"gotodo/internal/app/client/config"
)

// App ties the HTTP client and the local store together for the CLI.
type App struct {
	cfg   *config.Config
	log   *slog.Logger
	http  *httpClient
	store *SQLiteStorage
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := NewSQLiteStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	h := newHTTPClient(cfg, log)

	token, err := store.LoadToken()
	if err != nil {
		store.Close()
		return nil, err
	}
	h.SetToken(token)

	return &App{
		cfg:   cfg,
		log:   log,
		http:  h,
		store: store,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

// SignedIn reports whether a token has been saved locally. The token may
// still be expired; the server has the final say.
func (a *App) SignedIn() bool {
	token, err := a.store.LoadToken()
	return err == nil && token != ""
}

func (a *App) SignUp(ctx context.Context, username, password string) error {
	token, err := a.http.SignUp(ctx, username, password)
	if err != nil {
		return err
	}

	return a.saveToken(token)
}

func (a *App) SignIn(ctx context.Context, username, password string) error {
	token, err := a.http.SignIn(ctx, username, password)
	if err != nil {
		return err
	}

	return a.saveToken(token)
}

func (a *App) saveToken(token string) error {
	a.http.SetToken(token)
	if err := a.store.SaveToken(token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	return nil
}

// Todos fetches the todo list from the server and refreshes the local cache.
// If the server is unreachable it falls back to the cache; the second return
// value reports whether cached data was served.
func (a *App) Todos(ctx context.Context) ([]TodoItem, bool, error) {
	items, err := a.http.Todos(ctx)
	if err == nil {
		if cacheErr := a.store.CacheTodos(items); cacheErr != nil {
			a.log.Warn("failed to refresh todo cache", "error", cacheErr)
		}
		return items, false, nil
	}

	cached, cacheErr := a.store.CachedTodos()
	if cacheErr != nil || len(cached) == 0 {
		return nil, false, err
	}

	a.log.Debug("serving todos from local cache", "error", err)
	return cached, true, nil
}

func (a *App) CreateTodo(ctx context.Context, title, description string) error {
	return a.http.CreateTodo(ctx, title, description)
}

func (a *App) UpdateTodo(ctx context.Context, id, title, description string) error {
	return a.http.UpdateTodo(ctx, id, title, description)
}

func (a *App) DeleteTodo(ctx context.Context, id string) error {
	return a.http.DeleteTodo(ctx, id)
}
