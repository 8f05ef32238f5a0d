package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"gotodo/internal/domain/todo"
)

type TodoRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewTodoRepository(pool *pgxpool.Pool, log *slog.Logger) *TodoRepository {
	return &TodoRepository{
		pool: pool,
		log:  log.With("component", "todo_repository"),
	}
}

func (r *TodoRepository) List(ctx context.Context, userID uuid.UUID) ([]todo.Todo, error) {
	const query = `
		SELECT id, user_id, title, description, created_at, updated_at
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list todos", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var todos []todo.Todo
	for rows.Next() {
		var t todo.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return todos, nil
}

func (r *TodoRepository) Create(ctx context.Context, userID uuid.UUID, title, description string) (todo.Todo, error) {
	const query = `
		INSERT INTO todos (user_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, title, description, created_at, updated_at`

	var t todo.Todo
	err := r.pool.QueryRow(ctx, query, userID, title, description).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create todo", "user_id", userID, "error", err)
		return todo.Todo{}, fmt.Errorf("create todo: %w", err)
	}

	return t, nil
}

// Update touches only rows owned by userID; zero rows affected means the todo
// does not exist or belongs to someone else, and both surface as ErrNotFound.
func (r *TodoRepository) Update(ctx context.Context, userID, todoID uuid.UUID, title, description string) error {
	const query = `
		UPDATE todos
		SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4`

	result, err := r.pool.Exec(ctx, query, title, description, todoID, userID)
	if err != nil {
		r.log.Error("failed to update todo", "todo_id", todoID, "user_id", userID, "error", err)
		return fmt.Errorf("update todo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return todo.ErrNotFound
	}

	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	const query = `DELETE FROM todos WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, todoID, userID)
	if err != nil {
		r.log.Error("failed to delete todo", "todo_id", todoID, "user_id", userID, "error", err)
		return fmt.Errorf("delete todo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return todo.ErrNotFound
	}

	return nil
}
