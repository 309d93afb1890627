package repository

import (
	"context"

	"todo_api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoListRepository stores todo lists. Every read and write is keyed by owner.
type TodoListRepository struct {
	db *pgxpool.Pool
}

func NewTodoListRepository(db *pgxpool.Pool) *TodoListRepository {
	return &TodoListRepository{db: db}
}

func (r *TodoListRepository) Create(ctx context.Context, l *domain.TodoList) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO todo_lists (user_id, name)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		l.UserID, l.Name,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	return translate(err)
}

func (r *TodoListRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.TodoList, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, created_at, updated_at
		 FROM todo_lists
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTodoLists(rows)
}

// GetOwned returns the list only when it belongs to userID.
func (r *TodoListRepository) GetOwned(ctx context.Context, id, userID int64) (*domain.TodoList, error) {
	var l domain.TodoList
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, created_at, updated_at
		 FROM todo_lists
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&l.ID, &l.UserID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

// NameTaken reports whether userID already has a list called name, ignoring exceptID.
func (r *TodoListRepository) NameTaken(ctx context.Context, userID int64, name string, exceptID int64) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM todo_lists WHERE user_id = $1 AND name = $2 AND id <> $3
		 )`,
		userID, name, exceptID,
	).Scan(&taken)
	return taken, err
}

func (r *TodoListRepository) Update(ctx context.Context, l *domain.TodoList) error {
	err := r.db.QueryRow(ctx,
		`UPDATE todo_lists SET name = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3
		 RETURNING updated_at`,
		l.Name, l.ID, l.UserID,
	).Scan(&l.UpdatedAt)
	return translate(err)
}

func (r *TodoListRepository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM todo_lists WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTodoLists(rows pgx.Rows) ([]*domain.TodoList, error) {
	res := []*domain.TodoList{}
	for rows.Next() {
		var l domain.TodoList
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, &l)
	}
	return res, rows.Err()
}
