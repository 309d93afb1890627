package repository

import (
	"context"

	"todo_api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepository stores tasks. Lookups are keyed by the parent todo list;
// callers establish list ownership first.
type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByTodoList(ctx context.Context, todoListID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, todo_list_id, title, description, completed, created_at, updated_at
		 FROM tasks
		 WHERE todo_list_id = $1
		 ORDER BY id`,
		todoListID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.TodoListID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) GetInList(ctx context.Context, id, todoListID int64) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`SELECT id, todo_list_id, title, description, completed, created_at, updated_at
		 FROM tasks
		 WHERE id = $1 AND todo_list_id = $2`,
		id, todoListID,
	).Scan(&t.ID, &t.TodoListID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (todo_list_id, title, description, completed)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		t.TodoListID, t.Title, t.Description, t.Completed,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return translate(err)
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx,
		`UPDATE tasks SET title = $1, description = $2, completed = $3, updated_at = NOW()
		 WHERE id = $4 AND todo_list_id = $5
		 RETURNING updated_at`,
		t.Title, t.Description, t.Completed, t.ID, t.TodoListID,
	).Scan(&t.UpdatedAt)
	return translate(err)
}

func (r *TaskRepository) Delete(ctx context.Context, id, todoListID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND todo_list_id = $2`, id, todoListID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
