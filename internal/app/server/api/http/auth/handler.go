package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gotodo/internal/domain/token"
	"gotodo/internal/domain/user"
)

type Handler struct {
	users      user.Servicer
	tokens     token.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(users user.Servicer, tokens token.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		users:      users,
		tokens:     tokens,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signUpOp(), h.signUp)
	huma.Register(api, h.signInOp(), h.signIn)
}

func (h *Handler) signUp(ctx context.Context, input *signUpInput) (*authOutput, error) {
	u, err := h.users.Register(ctx, input.Body.Username, input.Body.Password)
	switch {
	case errors.Is(err, user.ErrExists):
		return &authOutput{
			Status: http.StatusConflict,
			Body: AuthResponse{
				Message: "User already exists. Please try signing in.",
			},
		}, nil
	case errors.Is(err, user.ErrInvalidInput):
		return &authOutput{
			Status: http.StatusUnprocessableEntity,
			Body: AuthResponse{
				Message: err.Error(),
			},
		}, nil
	case err != nil:
		h.log.Error("sign up failed", "error", err)
		return &authOutput{
			Status: http.StatusInternalServerError,
			Body: AuthResponse{
				Message: "Error while signing up.",
			},
		}, nil
	}

	t, err := h.tokens.Issue(u.ID)
	if err != nil {
		h.log.Error("token issue failed", "user_id", u.ID, "error", err)
		return &authOutput{
			Status: http.StatusInternalServerError,
			Body: AuthResponse{
				Message: "Error while signing up.",
			},
		}, nil
	}

	return &authOutput{
		Status: http.StatusCreated,
		Body: AuthResponse{
			Success: true,
			Message: "User sign up successful.",
			Token:   t,
		},
	}, nil
}

func (h *Handler) signIn(ctx context.Context, input *signInInput) (*authOutput, error) {
	u, err := h.users.Authenticate(ctx, input.Body.Username, input.Body.Password)
	switch {
	case errors.Is(err, user.ErrNotFound), errors.Is(err, user.ErrInvalidCredentials):
		return &authOutput{
			Status: http.StatusNotFound,
			Body: AuthResponse{
				Message: "User with these credentials does not exist.",
			},
		}, nil
	case err != nil:
		h.log.Error("sign in failed", "error", err)
		return &authOutput{
			Status: http.StatusInternalServerError,
			Body: AuthResponse{
				Message: "Error while signing in.",
			},
		}, nil
	}

	t, err := h.tokens.Issue(u.ID)
	if err != nil {
		h.log.Error("token issue failed", "user_id", u.ID, "error", err)
		return &authOutput{
			Status: http.StatusInternalServerError,
			Body: AuthResponse{
				Message: "Error while signing in.",
			},
		}, nil
	}

	return &authOutput{
		Status: http.StatusOK,
		Body: AuthResponse{
			Success: true,
			Message: "User sign in successful.",
			Token:   t,
		},
	}, nil
}
