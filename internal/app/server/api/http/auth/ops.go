package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) signUpOp() huma.Operation {
	return huma.Operation{
		OperationID: "sign-up",
		Method:      http.MethodPost,
		Path:        "/sign-up",
		Summary:     "Register a new account",
		Description: "Creates a credential record and returns a bearer token for the new account.",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) signInOp() huma.Operation {
	return huma.Operation{
		OperationID: "sign-in",
		Method:      http.MethodPost,
		Path:        "/sign-in",
		Summary:     "Sign in to an existing account",
		Description: "Verifies the credentials and returns a fresh bearer token.",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}
