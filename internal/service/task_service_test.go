package service

import (
	"context"
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTaskService_IsolatedPerList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a := f.list(t, 1, "A")
	b := f.list(t, 1, "B")
	task := f.task(t, 1, a.ID, "only in A")

	inB, err := f.tasks.List(ctx, 1, b.ID)
	if err != nil {
		t.Fatalf("list B: %v", err)
	}
	if len(inB) != 0 {
		t.Fatalf("task of A visible through B: %+v", inB)
	}

	if _, err := f.tasks.Get(ctx, 1, b.ID, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound via B, got %v", err)
	}
	if _, err := f.tasks.Update(ctx, 1, b.ID, task.ID, TaskInput{Title: "moved"}); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected update via B to fail, got %v", err)
	}
	if err := f.tasks.Delete(ctx, 1, b.ID, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected delete via B to fail, got %v", err)
	}

	inA, _ := f.tasks.List(ctx, 1, a.ID)
	if len(inA) != 1 || inA[0].Title != "only in A" {
		t.Fatalf("task of A should be untouched: %+v", inA)
	}
}

func TestTaskService_OtherUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a := f.list(t, 1, "A")
	task := f.task(t, 1, a.ID, "private")

	if _, err := f.tasks.List(ctx, 2, a.ID); !errors.Is(err, ErrTodoListNotFound) {
		t.Fatalf("expected ErrTodoListNotFound, got %v", err)
	}
	if _, err := f.tasks.Create(ctx, 2, a.ID, TaskInput{Title: "intruder"}); !errors.Is(err, ErrTodoListNotFound) {
		t.Fatalf("expected ErrTodoListNotFound, got %v", err)
	}
	if _, err := f.tasks.Get(ctx, 2, a.ID, task.ID); !errors.Is(err, ErrTodoListNotFound) {
		t.Fatalf("expected ErrTodoListNotFound, got %v", err)
	}
	if err := f.tasks.Delete(ctx, 2, a.ID, task.ID); !errors.Is(err, ErrTodoListNotFound) {
		t.Fatalf("expected ErrTodoListNotFound, got %v", err)
	}
	if f.store.TaskCount() != 1 {
		t.Fatalf("task must survive foreign delete")
	}
}

func TestTaskService_CreateAndUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a := f.list(t, 1, "A")
	created, err := f.tasks.Create(ctx, 1, a.ID, TaskInput{Title: " Buy milk ", Description: strPtr("2 litres")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Title != "Buy milk" || created.Completed || created.TodoListID != a.ID {
		t.Fatalf("unexpected task %+v", created)
	}

	updated, err := f.tasks.Update(ctx, 1, a.ID, created.ID, TaskInput{Title: "Buy oat milk", Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Completed || updated.Title != "Buy oat milk" {
		t.Fatalf("unexpected update result %+v", updated)
	}
	if updated.Description == nil || *updated.Description != "2 litres" {
		t.Fatalf("description should be kept when omitted, got %v", updated.Description)
	}

	got, _ := f.tasks.Get(ctx, 1, a.ID, created.ID)
	if !got.Completed || got.Title != "Buy oat milk" {
		t.Fatalf("update not persisted: %+v", got)
	}

	cleared, err := f.tasks.Update(ctx, 1, a.ID, created.ID, TaskInput{Title: "Buy oat milk", ClearDescription: true})
	if err != nil {
		t.Fatalf("clear description: %v", err)
	}
	if cleared.Description != nil {
		t.Fatalf("expected description to be cleared, got %q", *cleared.Description)
	}
	if got, _ := f.tasks.Get(ctx, 1, a.ID, created.ID); got.Description != nil {
		t.Fatalf("cleared description not persisted: %q", *got.Description)
	}

	if err := f.tasks.Delete(ctx, 1, a.ID, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.tasks.Get(ctx, 1, a.ID, created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected deleted task to be gone, got %v", err)
	}
}
