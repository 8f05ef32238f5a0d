// Package api wires every HTTP operation of the service:
//
//	POST   /sign-up               register, returns a bearer token (public)
//	POST   /sign-in               authenticate, returns a bearer token (public)
//	GET    /get-todos             list the caller's todos (auth)
//	POST   /create-todo           create a todo (auth)
//	PUT    /update-todo/{todoId}  update an owned todo (auth)
//	DELETE /delete-todo/{todoId}  delete an owned todo (auth)
package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	authAPI "gotodo/internal/app/server/api/http/auth"
	healthAPI "gotodo/internal/app/server/api/http/health"
	"gotodo/internal/app/server/api/http/middleware"
	authmw "gotodo/internal/app/server/api/http/middleware/auth"
	loggermw "gotodo/internal/app/server/api/http/middleware/logger"
	"gotodo/internal/app/server/api/http/middleware/requestmetrics"
	todoAPI "gotodo/internal/app/server/api/http/todo"
	"gotodo/internal/domain/todo"
	"gotodo/internal/domain/token"
	"gotodo/internal/domain/user"
	"gotodo/internal/metrics"
)

// Repositories carries the storage implementations the handlers are built on.
type Repositories struct {
	Users user.Repository
	Todos todo.Repository
}

type Handlers struct {
	Health *healthAPI.Handler
	Auth   *authAPI.Handler
	Todo   *todoAPI.Handler
}

// New builds a chi.Mux with all operations registered through huma.
func New(repos Repositories, tokens token.Servicer, collect *metrics.Collector, metricsHandler http.Handler, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("GoTodo API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(repos, tokens, collect, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Todo.SetupRoutes(API)

	mux.Method(http.MethodGet, "/metrics", metricsHandler)

	return mux
}

func handlers(repos Repositories, tokens token.Servicer, collect *metrics.Collector, log *slog.Logger) *Handlers {
	authMW := authmw.New(tokens, collect, log)
	loggerMW := loggermw.New(log)
	metricsMW := requestmetrics.New(collect)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(metricsMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userService := user.NewService(repos.Users, user.NewCredentialValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(metricsMW.Middleware())
	authHandler := authAPI.NewHandler(userService, tokens, log, middlewares.GetAllAndClear())

	todoService := todo.NewService(repos.Todos, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(metricsMW.Middleware())
	todoHandler := todoAPI.NewHandler(todoService, collect, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Auth:   authHandler,
		Todo:   todoHandler,
	}
}
