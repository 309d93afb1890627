package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todo_api/internal/domain"
	"todo_api/internal/repository"
)

// TaskInput carries task fields; nil pointers leave the stored value unchanged on update.
// ClearDescription removes the stored description when Description is nil.
type TaskInput struct {
	Title            string
	Description      *string
	ClearDescription bool
	Completed        *bool
}

// TaskService handles tasks inside todo lists of the authenticated user
type TaskService struct {
	tasks TaskStore
	auth  *Ownership
}

func NewTaskService(tasks TaskStore, ownership *Ownership) *TaskService {
	return &TaskService{tasks: tasks, auth: ownership}
}

func (s *TaskService) List(ctx context.Context, userID, todoListID int64) ([]*domain.Task, error) {
	scope, err := s.auth.Authorize(ctx, userID, Ref{TodoListID: todoListID})
	if err != nil {
		return nil, err
	}
	return s.tasks.ListByTodoList(ctx, scope.List.ID)
}

func (s *TaskService) Create(ctx context.Context, userID, todoListID int64, in TaskInput) (*domain.Task, error) {
	scope, err := s.auth.Authorize(ctx, userID, Ref{TodoListID: todoListID})
	if err != nil {
		return nil, err
	}

	t := &domain.Task{
		TodoListID:  scope.List.ID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}

	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (s *TaskService) Get(ctx context.Context, userID, todoListID, taskID int64) (*domain.Task, error) {
	scope, err := s.auth.Authorize(ctx, userID, Ref{TodoListID: todoListID, TaskID: taskID})
	if err != nil {
		return nil, err
	}
	return scope.Task, nil
}

func (s *TaskService) Update(ctx context.Context, userID, todoListID, taskID int64, in TaskInput) (*domain.Task, error) {
	scope, err := s.auth.Authorize(ctx, userID, Ref{TodoListID: todoListID, TaskID: taskID})
	if err != nil {
		return nil, err
	}

	t := scope.Task
	t.Title = strings.TrimSpace(in.Title)
	switch {
	case in.Description != nil:
		t.Description = in.Description
	case in.ClearDescription:
		t.Description = nil
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, todoListID, taskID int64) error {
	scope, err := s.auth.Authorize(ctx, userID, Ref{TodoListID: todoListID, TaskID: taskID})
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, scope.Task.ID, scope.List.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
