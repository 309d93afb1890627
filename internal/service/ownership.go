package service

import (
	"context"
	"errors"
	"fmt"

	"todo_api/internal/domain"
	"todo_api/internal/repository"
)

var (
	ErrTodoListNotFound = errors.New("todo list not found")
	ErrTaskNotFound     = errors.New("task not found")
)

// Ref names a todo list and, optionally, a task inside it. TaskID 0 means list only.
type Ref struct {
	TodoListID int64
	TaskID     int64
}

// Scope is the resolved ownership chain.
type Scope struct {
	List *domain.TodoList
	Task *domain.Task
}

// Ownership resolves user -> todo list -> task. It is the only place the chain is checked;
// every list and task operation goes through Authorize.
type Ownership struct {
	lists TodoListStore
	tasks TaskStore
}

func NewOwnership(lists TodoListStore, tasks TaskStore) *Ownership {
	return &Ownership{lists: lists, tasks: tasks}
}

// Authorize succeeds only when the list belongs to userID and, if a task is named,
// the task belongs to that list.
func (o *Ownership) Authorize(ctx context.Context, userID int64, ref Ref) (*Scope, error) {
	if userID <= 0 || ref.TodoListID <= 0 {
		return nil, ErrTodoListNotFound
	}

	list, err := o.lists.GetOwned(ctx, ref.TodoListID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoListNotFound
		}
		return nil, fmt.Errorf("get todo list: %w", err)
	}

	scope := &Scope{List: list}
	if ref.TaskID == 0 {
		return scope, nil
	}
	if ref.TaskID < 0 {
		return nil, ErrTaskNotFound
	}

	task, err := o.tasks.GetInList(ctx, ref.TaskID, list.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	scope.Task = task
	return scope, nil
}
