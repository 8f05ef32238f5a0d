package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"gotodo/internal/app/client/config"
)

var ErrUnauthorized = errors.New("unauthorized")

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log.With("component", "http_client"),
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "GoTodo-Client/1.0",
	}
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

func (h *httpClient) SignUp(ctx context.Context, username, password string) (string, error) {
	env, err := h.do(ctx, http.MethodPost, "/sign-up", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	return env.Token, nil
}

func (h *httpClient) SignIn(ctx context.Context, username, password string) (string, error) {
	env, err := h.do(ctx, http.MethodPost, "/sign-in", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	return env.Token, nil
}

func (h *httpClient) Todos(ctx context.Context) ([]TodoItem, error) {
	env, err := h.do(ctx, http.MethodGet, "/get-todos", nil)
	if err != nil {
		return nil, err
	}

	return env.Todos, nil
}

func (h *httpClient) CreateTodo(ctx context.Context, title, description string) error {
	_, err := h.do(ctx, http.MethodPost, "/create-todo", map[string]string{
		"title":       title,
		"description": description,
	})
	return err
}

func (h *httpClient) UpdateTodo(ctx context.Context, id, title, description string) error {
	_, err := h.do(ctx, http.MethodPut, "/update-todo/"+id, map[string]string{
		"title":       title,
		"description": description,
	})
	return err
}

func (h *httpClient) DeleteTodo(ctx context.Context, id string) error {
	_, err := h.do(ctx, http.MethodDelete, "/delete-todo/"+id, nil)
	return err
}

func (h *httpClient) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, env.Message)
	}

	if !env.Success {
		return nil, fmt.Errorf("server error (status %d): %s", resp.StatusCode, env.Message)
	}

	return &env, nil
}
