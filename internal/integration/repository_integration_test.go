package integration

import (
	"context"
	"errors"
	"os"
	"testing"

	"todo_api/internal/db"
	"todo_api/internal/domain"
	"todo_api/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func connect(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(context.Background(), pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return pool
}

func createUser(t *testing.T, users *repository.UserRepository) *domain.User {
	t.Helper()
	u := &domain.User{
		Name:     "Tester",
		Email:    uuid.NewString() + "@example.com",
		Password: "hash",
	}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestUserRepository(t *testing.T) {
	pool := connect(t)
	ctx := context.Background()
	users := repository.NewUserRepository(pool)

	u := createUser(t, users)
	if u.ID == 0 || u.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamps to be set, got %+v", u)
	}

	got, err := users.GetByEmail(ctx, u.Email)
	if err != nil || got.ID != u.ID {
		t.Fatalf("get by email: %v %+v", err, got)
	}

	dup := &domain.User{Name: "Other", Email: u.Email, Password: "hash"}
	if err := users.Create(ctx, dup); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	if _, err := users.GetByID(ctx, -1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTodoListOwnershipScoping(t *testing.T) {
	pool := connect(t)
	ctx := context.Background()
	users := repository.NewUserRepository(pool)
	lists := repository.NewTodoListRepository(pool)
	tasks := repository.NewTaskRepository(pool)

	alice := createUser(t, users)
	bob := createUser(t, users)

	l := &domain.TodoList{UserID: alice.ID, Name: "Inbox"}
	if err := lists.Create(ctx, l); err != nil {
		t.Fatalf("create list: %v", err)
	}

	if _, err := lists.GetOwned(ctx, l.ID, bob.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("bob must not see alice's list, got %v", err)
	}
	if err := lists.Delete(ctx, l.ID, bob.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("bob must not delete alice's list, got %v", err)
	}

	stolen := &domain.TodoList{ID: l.ID, UserID: bob.ID, Name: "Mine"}
	if err := lists.Update(ctx, stolen); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("bob must not rename alice's list, got %v", err)
	}

	taken, err := lists.NameTaken(ctx, alice.ID, "Inbox", 0)
	if err != nil || !taken {
		t.Fatalf("expected name to be taken: %v %v", taken, err)
	}
	taken, err = lists.NameTaken(ctx, alice.ID, "Inbox", l.ID)
	if err != nil || taken {
		t.Fatalf("own name must not count as taken: %v %v", taken, err)
	}
	if err := lists.Create(ctx, &domain.TodoList{UserID: alice.ID, Name: "Inbox"}); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	other := &domain.TodoList{UserID: alice.ID, Name: "Other"}
	if err := lists.Create(ctx, other); err != nil {
		t.Fatalf("create second list: %v", err)
	}

	desc := "details"
	task := &domain.Task{TodoListID: l.ID, Title: "first", Description: &desc}
	if err := tasks.Create(ctx, task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := tasks.GetInList(ctx, task.ID, other.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("task must not be reachable via another list, got %v", err)
	}
	got, err := tasks.GetInList(ctx, task.ID, l.ID)
	if err != nil || got.Description == nil || *got.Description != desc {
		t.Fatalf("get task: %v %+v", err, got)
	}

	if err := lists.Delete(ctx, l.ID, alice.ID); err != nil {
		t.Fatalf("delete list: %v", err)
	}
	if _, err := tasks.GetInList(ctx, task.ID, l.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("tasks must be deleted with their list, got %v", err)
	}
}

func TestAuditRepository(t *testing.T) {
	pool := connect(t)
	ctx := context.Background()
	users := repository.NewUserRepository(pool)
	audits := repository.NewAuditRepository(pool)

	u := createUser(t, users)
	for _, action := range []string{domain.AuditActionRegister, domain.AuditActionLogin} {
		entry := &domain.AuditLog{UserID: &u.ID, Action: action, IP: "127.0.0.1"}
		if err := audits.Create(ctx, entry); err != nil {
			t.Fatalf("create audit log: %v", err)
		}
	}
	if err := audits.Create(ctx, &domain.AuditLog{
		Action:  domain.AuditActionLoginFailed,
		Details: map[string]any{"email": u.Email},
	}); err != nil {
		t.Fatalf("create anonymous audit log: %v", err)
	}

	logs, err := audits.GetByUserID(ctx, u.ID, 10)
	if err != nil {
		t.Fatalf("get audit logs: %v", err)
	}
	if len(logs) != 2 || logs[0].Action != domain.AuditActionLogin {
		t.Fatalf("unexpected audit logs %+v", logs)
	}
}
