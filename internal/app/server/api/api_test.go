package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"gotodo/internal/domain/todo"
	"gotodo/internal/domain/token"
	"gotodo/internal/domain/user"
	"gotodo/internal/metrics"
)

type memUserRepo struct {
	mu     sync.Mutex
	byName map[string]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byName: make(map[string]user.User)}
}

func (r *memUserRepo) Create(_ context.Context, username, passwordHash string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[username]; ok {
		return user.User{}, user.ErrExists
	}

	u := user.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	r.byName[username] = u

	return u, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byName[username]
	if !ok {
		return user.User{}, user.ErrNotFound
	}

	return u, nil
}

type memTodoRepo struct {
	mu    sync.Mutex
	todos []todo.Todo
}

func (r *memTodoRepo) List(_ context.Context, userID uuid.UUID) ([]todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []todo.Todo
	for _, t := range r.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *memTodoRepo) Create(_ context.Context, userID uuid.UUID, title, description string) (todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := todo.Todo{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	r.todos = append(r.todos, t)

	return t, nil
}

func (r *memTodoRepo) Update(_ context.Context, userID, todoID uuid.UUID, title, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.todos {
		if t.ID == todoID && t.UserID == userID {
			r.todos[i].Title = title
			r.todos[i].Description = description
			r.todos[i].UpdatedAt = time.Now()
			return nil
		}
	}

	return todo.ErrNotFound
}

func (r *memTodoRepo) Delete(_ context.Context, userID, todoID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.todos {
		if t.ID == todoID && t.UserID == userID {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}

	return todo.ErrNotFound
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Todos   []struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"todos"`
}

func newTestMux(t *testing.T) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	collect := metrics.NewCollector(reg)
	repos := Repositories{
		Users: newMemUserRepo(),
		Todos: &memTodoRepo{},
	}

	return New(repos, token.NewService([]byte("test-secret"), time.Hour), collect, metrics.Handler(reg), slog.Default())
}

func doRequest(t *testing.T, mux http.Handler, method, path, bearer string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		// Non-envelope responses (validation errors) are ignored here.
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}

	return rec, env
}

func signUp(t *testing.T, mux http.Handler, username, password string) string {
	t.Helper()

	rec, env := doRequest(t, mux, http.MethodPost, "/sign-up", "",
		map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)
	require.NotEmpty(t, env.Token)

	return env.Token
}

func TestAPI_SignUpAndSignIn(t *testing.T) {
	mux := newTestMux(t)

	rec, env := doRequest(t, mux, http.MethodPost, "/sign-up", "",
		map[string]string{"username": "alice", "password": "password123"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "User sign up successful.", env.Message)
	assert.NotEmpty(t, env.Token)

	rec, env = doRequest(t, mux, http.MethodPost, "/sign-in", "",
		map[string]string{"username": "alice", "password": "password123"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Token)
}

func TestAPI_SignUp_Duplicate(t *testing.T) {
	mux := newTestMux(t)
	signUp(t, mux, "alice", "password123")

	rec, env := doRequest(t, mux, http.MethodPost, "/sign-up", "",
		map[string]string{"username": "alice", "password": "different-pw"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "User already exists. Please try signing in.", env.Message)
}

func TestAPI_SignUp_WeakPassword(t *testing.T) {
	mux := newTestMux(t)

	rec, env := doRequest(t, mux, http.MethodPost, "/sign-up", "",
		map[string]string{"username": "alice", "password": "short"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, env.Success)
}

func TestAPI_SignIn_WrongPassword(t *testing.T) {
	mux := newTestMux(t)
	signUp(t, mux, "alice", "password123")

	rec, env := doRequest(t, mux, http.MethodPost, "/sign-in", "",
		map[string]string{"username": "alice", "password": "wrong-password"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User with these credentials does not exist.", env.Message)
}

func TestAPI_Todos_RequireToken(t *testing.T) {
	mux := newTestMux(t)

	rec, env := doRequest(t, mux, http.MethodGet, "/get-todos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Please signin/signup to proceed.", env.Message)

	rec, env = doRequest(t, mux, http.MethodGet, "/get-todos", "garbage.token.here", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token verification failed.", env.Message)
}

func TestAPI_TodoLifecycle(t *testing.T) {
	mux := newTestMux(t)
	tok := signUp(t, mux, "alice", "password123")

	rec, env := doRequest(t, mux, http.MethodPost, "/create-todo", tok,
		map[string]string{"title": "buy milk", "description": "2%"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "New todo created successfully.", env.Message)

	rec, env = doRequest(t, mux, http.MethodGet, "/get-todos", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.Todos, 1)
	assert.Equal(t, "buy milk", env.Todos[0].Title)
	assert.Equal(t, "2%", env.Todos[0].Description)
	todoID := env.Todos[0].ID

	rec, env = doRequest(t, mux, http.MethodPut, "/update-todo/"+todoID, tok,
		map[string]string{"title": "buy oat milk", "description": "barista"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Todo updated successfully.", env.Message)

	rec, env = doRequest(t, mux, http.MethodGet, "/get-todos", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.Todos, 1)
	assert.Equal(t, "buy oat milk", env.Todos[0].Title)

	rec, env = doRequest(t, mux, http.MethodDelete, "/delete-todo/"+todoID, tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Todo deleted successfully.", env.Message)

	rec, env = doRequest(t, mux, http.MethodDelete, "/delete-todo/"+todoID, tok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Todo not found.", env.Message)

	rec, env = doRequest(t, mux, http.MethodGet, "/get-todos", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.Todos)
}

func TestAPI_Todos_OwnershipIsolation(t *testing.T) {
	mux := newTestMux(t)
	aliceTok := signUp(t, mux, "alice", "password123")
	bobTok := signUp(t, mux, "bob", "password456")

	rec, _ := doRequest(t, mux, http.MethodPost, "/create-todo", aliceTok,
		map[string]string{"title": "alice's secret", "description": ""})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, mux, http.MethodGet, "/get-todos", aliceTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.Todos, 1)
	aliceTodoID := env.Todos[0].ID

	// Bob sees none of Alice's todos.
	rec, env = doRequest(t, mux, http.MethodGet, "/get-todos", bobTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.Todos)

	// Bob cannot touch Alice's todo; the answer is the same as for a
	// nonexistent ID.
	rec, env = doRequest(t, mux, http.MethodPut, "/update-todo/"+aliceTodoID, bobTok,
		map[string]string{"title": "hijacked", "description": ""})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Todo not found.", env.Message)

	rec, env = doRequest(t, mux, http.MethodDelete, "/delete-todo/"+aliceTodoID, bobTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Todo not found.", env.Message)

	// Alice's todo survives untouched.
	rec, env = doRequest(t, mux, http.MethodGet, "/get-todos", aliceTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.Todos, 1)
	assert.Equal(t, "alice's secret", env.Todos[0].Title)
}

func TestAPI_UpdateTodo_MalformedID(t *testing.T) {
	mux := newTestMux(t)
	tok := signUp(t, mux, "alice", "password123")

	rec, env := doRequest(t, mux, http.MethodPut, "/update-todo/not-a-uuid", tok,
		map[string]string{"title": "t", "description": ""})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Todo not found.", env.Message)
}

func TestAPI_HealthCheck(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"OK"`)
}

func TestAPI_MetricsEndpoint(t *testing.T) {
	mux := newTestMux(t)
	signUp(t, mux, "alice", "password123")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gotodo_http_requests_total")
}
