package domain

import "time"

// Task is a single work item within a TodoList.
type Task struct {
	ID          int64     `db:"id" json:"id"`
	TodoListID  int64     `db:"todo_list_id" json:"todo_list_id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
