package todo

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "get-todos",
		Method:      http.MethodGet,
		Path:        "/get-todos",
		Summary:     "List the caller's todos",
		Tags:        []string{"todos"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "create-todo",
		Method:      http.MethodPost,
		Path:        "/create-todo",
		Summary:     "Create a todo",
		Tags:        []string{"todos"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "update-todo",
		Method:      http.MethodPut,
		Path:        "/update-todo/{todoId}",
		Summary:     "Update a todo",
		Tags:        []string{"todos"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "delete-todo",
		Method:      http.MethodDelete,
		Path:        "/delete-todo/{todoId}",
		Summary:     "Delete a todo",
		Tags:        []string{"todos"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
