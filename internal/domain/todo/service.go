package todo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID uuid.UUID) ([]Todo, error)
	Create(ctx context.Context, userID uuid.UUID, title, description string) (Todo, error)
	Update(ctx context.Context, userID, todoID uuid.UUID, title, description string) error
	Delete(ctx context.Context, userID, todoID uuid.UUID) error
}

// Service implements the business logic for todo operations. Every operation
// carries the owner's user ID; a todo is never visible to or mutable by
// anyone but its owner.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "todo_service"),
	}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Todo, error) {
	todos, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list todos", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return todos, nil
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, title, description string) (Todo, error) {
	t, err := s.repo.Create(ctx, userID, title, description)
	if err != nil {
		s.log.Error("failed to create todo", "user_id", userID, "error", err)
		return Todo{}, fmt.Errorf("create todo: %w", err)
	}

	return t, nil
}

func (s *Service) Update(ctx context.Context, userID, todoID uuid.UUID, title, description string) error {
	if err := s.repo.Update(ctx, userID, todoID, title, description); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		s.log.Error("failed to update todo", "todo_id", todoID, "user_id", userID, "error", err)
		return fmt.Errorf("update todo: %w", err)
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, todoID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		s.log.Error("failed to delete todo", "todo_id", todoID, "user_id", userID, "error", err)
		return fmt.Errorf("delete todo: %w", err)
	}

	return nil
}
