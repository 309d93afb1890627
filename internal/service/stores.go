package service

import (
	"context"
	"strconv"

	"todo_api/internal/domain"
)

// UserStore is implemented by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TodoListStore is implemented by repository.TodoListRepository.
type TodoListStore interface {
	Create(ctx context.Context, l *domain.TodoList) error
	ListByUser(ctx context.Context, userID int64) ([]*domain.TodoList, error)
	GetOwned(ctx context.Context, id, userID int64) (*domain.TodoList, error)
	NameTaken(ctx context.Context, userID int64, name string, exceptID int64) (bool, error)
	Update(ctx context.Context, l *domain.TodoList) error
	Delete(ctx context.Context, id, userID int64) error
}

// TaskStore is implemented by repository.TaskRepository.
type TaskStore interface {
	ListByTodoList(ctx context.Context, todoListID int64) ([]*domain.Task, error)
	GetInList(ctx context.Context, id, todoListID int64) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id, todoListID int64) error
}

// AuditStore is implemented by repository.AuditRepository.
type AuditStore interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	GetByUserID(ctx context.Context, userID int64, limit int) ([]*domain.AuditLog, error)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
