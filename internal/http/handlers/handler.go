package handlers

import (
	"context"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoStore is the persistence surface the todo handlers need.
type TodoStore interface {
	List(ctx context.Context) ([]*domain.Todo, error)
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	Create(ctx context.Context, t *domain.Todo) error
	Update(ctx context.Context, id string, upd repository.TodoUpdate) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
}

// UserStore is the persistence surface the user handlers need.
type UserStore interface {
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	Todos TodoStore
	Users UserStore
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		Todos: repository.NewTodoRepository(db),
		Users: repository.NewUserRepository(db),
	}
}

// NewHandlerWithStores wires explicit store implementations, used by tests.
func NewHandlerWithStores(todos TodoStore, users UserStore) *Handler {
	return &Handler{Todos: todos, Users: users}
}
