package todo

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]Todo, error)
	Create(ctx context.Context, userID uuid.UUID, title, description string) (Todo, error)
	Update(ctx context.Context, userID, todoID uuid.UUID, title, description string) error
	Delete(ctx context.Context, userID, todoID uuid.UUID) error
}
