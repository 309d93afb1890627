package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todo_api/internal/domain"
	"todo_api/internal/repository"
)

var ErrTodoListNameTaken = errors.New("todo list name already taken")

// TodoListService handles todo lists of the authenticated user
type TodoListService struct {
	lists TodoListStore
	auth  *Ownership
}

func NewTodoListService(lists TodoListStore, ownership *Ownership) *TodoListService {
	return &TodoListService{lists: lists, auth: ownership}
}

func (s *TodoListService) List(ctx context.Context, userID int64) ([]*domain.TodoList, error) {
	return s.lists.ListByUser(ctx, userID)
}

func (s *TodoListService) Create(ctx context.Context, userID int64, name string) (*domain.TodoList, error) {
	name = strings.TrimSpace(name)
	if err := s.ensureNameFree(ctx, userID, name, 0); err != nil {
		return nil, err
	}

	l := &domain.TodoList{UserID: userID, Name: name}
	if err := s.lists.Create(ctx, l); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrTodoListNameTaken
		}
		return nil, fmt.Errorf("create todo list: %w", err)
	}
	return l, nil
}

func (s *TodoListService) Get(ctx context.Context, userID, id int64) (*domain.TodoList, error) {
	scope, err := s.auth.Authorize(ctx, userID, Ref{TodoListID: id})
	if err != nil {
		return nil, err
	}
	return scope.List, nil
}

func (s *TodoListService) Rename(ctx context.Context, userID, id int64, name string) (*domain.TodoList, error) {
	scope, err := s.auth.Authorize(ctx, userID, Ref{TodoListID: id})
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := s.ensureNameFree(ctx, userID, name, id); err != nil {
		return nil, err
	}

	l := scope.List
	l.Name = name
	if err := s.lists.Update(ctx, l); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrTodoListNameTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrTodoListNotFound
		}
		return nil, fmt.Errorf("update todo list: %w", err)
	}
	return l, nil
}

// Delete removes the list together with its tasks.
func (s *TodoListService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.auth.Authorize(ctx, userID, Ref{TodoListID: id}); err != nil {
		return err
	}
	if err := s.lists.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoListNotFound
		}
		return fmt.Errorf("delete todo list: %w", err)
	}
	return nil
}

func (s *TodoListService) ensureNameFree(ctx context.Context, userID int64, name string, exceptID int64) error {
	taken, err := s.lists.NameTaken(ctx, userID, name, exceptID)
	if err != nil {
		return fmt.Errorf("check todo list name: %w", err)
	}
	if taken {
		return ErrTodoListNameTaken
	}
	return nil
}
