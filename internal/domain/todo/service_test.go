package todo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, userID uuid.UUID) ([]Todo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Todo), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, userID uuid.UUID, title, description string) (Todo, error) {
	args := m.Called(ctx, userID, title, description)
	return args.Get(0).(Todo), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, userID, todoID uuid.UUID, title, description string) error {
	args := m.Called(ctx, userID, todoID, title, description)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	args := m.Called(ctx, userID, todoID)
	return args.Error(0)
}

func TestService_List(t *testing.T) {
	userID := uuid.New()
	stored := []Todo{
		{ID: uuid.New(), UserID: userID, Title: "buy milk"},
		{ID: uuid.New(), UserID: userID, Title: "walk the dog"},
	}

	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	repo.On("List", mock.Anything, userID).Return(stored, nil)

	got, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestService_List_RepoError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := svc.List(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "list todos")
}

func TestService_Create(t *testing.T) {
	userID := uuid.New()
	created := Todo{ID: uuid.New(), UserID: userID, Title: "buy milk", Description: "2%"}

	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	repo.On("Create", mock.Anything, userID, "buy milk", "2%").Return(created, nil)

	got, err := svc.Create(context.Background(), userID, "buy milk", "2%")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	repo.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	repo.On("Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(ErrNotFound)

	err := svc.Update(context.Background(), uuid.New(), uuid.New(), "t", "d")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_RepoError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	repo.On("Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	err := svc.Update(context.Background(), uuid.New(), uuid.New(), "t", "d")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	repo.On("Delete", mock.Anything, mock.Anything, mock.Anything).Return(ErrNotFound)

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	userID, todoID := uuid.New(), uuid.New()

	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	repo.On("Delete", mock.Anything, userID, todoID).Return(nil)

	err := svc.Delete(context.Background(), userID, todoID)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
