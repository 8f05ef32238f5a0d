package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"gotodo/internal/domain/token"
	"gotodo/internal/metrics"
)

type Auth struct {
	tokens  token.Servicer
	collect *metrics.Collector
	log     *slog.Logger
}

func New(tokens token.Servicer, collect *metrics.Collector, log *slog.Logger) *Auth {
	return &Auth{
		tokens:  tokens,
		collect: collect,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const UserIDKey contextKey = "userID"

const bearerPrefix = "Bearer "

// ParseBearer extracts the token from an Authorization header value.
func ParseBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	t := header[len(bearerPrefix):]
	if t == "" {
		return "", false
	}

	return t, true
}

// Middleware verifies the bearer token and injects the authenticated user ID
// into the request context. Requests without a valid token never reach the
// downstream handler.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		tokenString, ok := ParseBearer(ctx.Header("Authorization"))
		if !ok {
			a.reject(ctx, "Please signin/signup to proceed.")
			return
		}

		userID, err := a.tokens.Verify(tokenString)
		if err != nil {
			a.log.Debug("token verification failed", "error", err)
			a.reject(ctx, "Token verification failed.")
			return
		}

		newCtx := context.WithValue(ctx.Context(), UserIDKey, userID)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) reject(ctx huma.Context, message string) {
	a.collect.RecordAuthFailure()

	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]any{
		"success": false,
		"message": message,
	})
	if err != nil {
		a.log.Error("failed to write unauthorized response", "error", err)
	}
}

// GetUserID returns the authenticated user ID stored by the middleware.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
