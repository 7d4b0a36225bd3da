package handlers

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskStore is the persistence surface the task handlers depend on.
// Satisfied by repository.TaskRepository; tests substitute fakes.
type TaskStore interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, t *domain.Task) error
	SetCompleted(ctx context.Context, id int64, completed bool) error
	Delete(ctx context.Context, id int64) error
}

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Handler struct {
	Tasks TaskStore
	Users UserStore
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		Tasks: repository.NewTaskRepository(db),
		Users: repository.NewUserRepository(db),
	}
}
