package todo

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"gotodo/internal/app/server/api/http/middleware/auth"
	"gotodo/internal/domain/todo"
	"gotodo/internal/metrics"
)

type Handler struct {
	service    todo.Servicer
	collect    *metrics.Collector
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service todo.Servicer, collect *metrics.Collector, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		collect:    collect,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	todos, err := h.service.List(ctx, userID)
	if err != nil {
		return &listOutput{
			Status: http.StatusInternalServerError,
			Body: ListResponse{
				Message: "Error while retrieving todos.",
			},
		}, nil
	}

	items := make([]TodoItem, 0, len(todos))
	for _, t := range todos {
		items = append(items, TodoItem{
			ID:          t.ID.String(),
			Title:       t.Title,
			Description: t.Description,
		})
	}

	h.collect.RecordTodoOp("list")

	return &listOutput{
		Status: http.StatusOK,
		Body: ListResponse{
			Success: true,
			Message: "Todos retrieved successfully.",
			Todos:   items,
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*actionOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if _, err := h.service.Create(ctx, userID, input.Body.Title, input.Body.Description); err != nil {
		return &actionOutput{
			Status: http.StatusInternalServerError,
			Body: ActionResponse{
				Message: "Error while creating todo.",
			},
		}, nil
	}

	h.collect.RecordTodoOp("create")

	return &actionOutput{
		Status: http.StatusCreated,
		Body: ActionResponse{
			Success: true,
			Message: "New todo created successfully.",
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*actionOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	todoID, err := uuid.Parse(input.TodoID)
	if err != nil {
		return h.notFound(), nil
	}

	err = h.service.Update(ctx, userID, todoID, input.Body.Title, input.Body.Description)
	switch {
	case errors.Is(err, todo.ErrNotFound):
		return h.notFound(), nil
	case err != nil:
		return &actionOutput{
			Status: http.StatusInternalServerError,
			Body: ActionResponse{
				Message: "Error while updating todo.",
			},
		}, nil
	}

	h.collect.RecordTodoOp("update")

	return &actionOutput{
		Status: http.StatusOK,
		Body: ActionResponse{
			Success: true,
			Message: "Todo updated successfully.",
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*actionOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	todoID, err := uuid.Parse(input.TodoID)
	if err != nil {
		return h.notFound(), nil
	}

	err = h.service.Delete(ctx, userID, todoID)
	switch {
	case errors.Is(err, todo.ErrNotFound):
		return h.notFound(), nil
	case err != nil:
		return &actionOutput{
			Status: http.StatusInternalServerError,
			Body: ActionResponse{
				Message: "Error while deleting todo.",
			},
		}, nil
	}

	h.collect.RecordTodoOp("delete")

	return &actionOutput{
		Status: http.StatusOK,
		Body: ActionResponse{
			Success: true,
			Message: "Todo deleted successfully.",
		},
	}, nil
}

// notFound covers both a missing todo and one owned by another user; the two
// are indistinguishable to the caller on purpose.
func (h *Handler) notFound() *actionOutput {
	return &actionOutput{
		Status: http.StatusNotFound,
		Body: ActionResponse{
			Message: "Todo not found.",
		},
	}
}
