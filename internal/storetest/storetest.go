// Package storetest provides in-memory implementations of the service stores
// with the same not-found/duplicate semantics as the postgres repositories.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"todo_api/internal/domain"
	"todo_api/internal/repository"
)

// Store groups the in-memory stores. Deleting a list cascades to its tasks.
type Store struct {
	mu     sync.Mutex
	nextID int64
	now    func() time.Time

	users  map[int64]*domain.User
	lists  map[int64]*domain.TodoList
	tasks  map[int64]*domain.Task
	audits []*domain.AuditLog

	// Err, when set, is returned by every operation.
	Err error

	Users *Users
	Lists *Lists
	Tasks *Tasks
	Audit *Audit
}

func New() *Store {
	s := &Store{
		now:   time.Now,
		users: make(map[int64]*domain.User),
		lists: make(map[int64]*domain.TodoList),
		tasks: make(map[int64]*domain.Task),
	}
	s.Users = &Users{s: s}
	s.Lists = &Lists{s: s}
	s.Tasks = &Tasks{s: s}
	s.Audit = &Audit{s: s}
	return s
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Users implements service.UserStore.
type Users struct{ s *Store }

func (u *Users) Create(_ context.Context, user *domain.User) error {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = s.id()
	user.CreatedAt = s.now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (u *Users) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.users {
		if existing.Email == email {
			cp := *existing
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (u *Users) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	existing, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *existing
	return &cp, nil
}

// Lists implements service.TodoListStore.
type Lists struct{ s *Store }

func (l *Lists) Create(_ context.Context, list *domain.TodoList) error {
	s := l.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.nameTaken(list.UserID, list.Name, 0) {
		return repository.ErrDuplicate
	}
	list.ID = s.id()
	list.CreatedAt = s.now()
	list.UpdatedAt = list.CreatedAt
	cp := *list
	s.lists[list.ID] = &cp
	return nil
}

func (l *Lists) ListByUser(_ context.Context, userID int64) ([]*domain.TodoList, error) {
	s := l.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	res := []*domain.TodoList{}
	for _, list := range s.lists {
		if list.UserID == userID {
			cp := *list
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (l *Lists) GetOwned(_ context.Context, id, userID int64) (*domain.TodoList, error) {
	s := l.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	list, ok := s.lists[id]
	if !ok || list.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *list
	return &cp, nil
}

func (l *Lists) NameTaken(_ context.Context, userID int64, name string, exceptID int64) (bool, error) {
	s := l.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	return s.nameTaken(userID, name, exceptID), nil
}

func (l *Lists) Update(_ context.Context, list *domain.TodoList) error {
	s := l.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.lists[list.ID]
	if !ok || existing.UserID != list.UserID {
		return repository.ErrNotFound
	}
	if s.nameTaken(list.UserID, list.Name, list.ID) {
		return repository.ErrDuplicate
	}
	existing.Name = list.Name
	existing.UpdatedAt = s.now()
	list.UpdatedAt = existing.UpdatedAt
	return nil
}

func (l *Lists) Delete(_ context.Context, id, userID int64) error {
	s := l.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.lists[id]
	if !ok || existing.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.lists, id)
	for taskID, t := range s.tasks {
		if t.TodoListID == id {
			delete(s.tasks, taskID)
		}
	}
	return nil
}

func (s *Store) nameTaken(userID int64, name string, exceptID int64) bool {
	for _, list := range s.lists {
		if list.UserID == userID && list.Name == name && list.ID != exceptID {
			return true
		}
	}
	return false
}

// Tasks implements service.TaskStore.
type Tasks struct{ s *Store }

func (t *Tasks) ListByTodoList(_ context.Context, todoListID int64) ([]*domain.Task, error) {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	res := []*domain.Task{}
	for _, task := range s.tasks {
		if task.TodoListID == todoListID {
			cp := *task
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (t *Tasks) GetInList(_ context.Context, id, todoListID int64) (*domain.Task, error) {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	task, ok := s.tasks[id]
	if !ok || task.TodoListID != todoListID {
		return nil, repository.ErrNotFound
	}
	cp := *task
	return &cp, nil
}

func (t *Tasks) Create(_ context.Context, task *domain.Task) error {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.lists[task.TodoListID]; !ok {
		return repository.ErrNotFound
	}
	task.ID = s.id()
	task.CreatedAt = s.now()
	task.UpdatedAt = task.CreatedAt
	cp := *task
	s.tasks[task.ID] = &cp
	return nil
}

func (t *Tasks) Update(_ context.Context, task *domain.Task) error {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.tasks[task.ID]
	if !ok || existing.TodoListID != task.TodoListID {
		return repository.ErrNotFound
	}
	task.UpdatedAt = s.now()
	cp := *task
	s.tasks[task.ID] = &cp
	return nil
}

func (t *Tasks) Delete(_ context.Context, id, todoListID int64) error {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.tasks[id]
	if !ok || existing.TodoListID != todoListID {
		return repository.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

// Audit implements service.AuditStore.
type Audit struct{ s *Store }

func (a *Audit) Create(_ context.Context, log *domain.AuditLog) error {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	log.ID = s.id()
	log.CreatedAt = s.now()
	cp := *log
	s.audits = append(s.audits, &cp)
	return nil
}

func (a *Audit) GetByUserID(_ context.Context, userID int64, limit int) ([]*domain.AuditLog, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	res := []*domain.AuditLog{}
	for i := len(s.audits) - 1; i >= 0 && len(res) < limit; i-- {
		if l := s.audits[i]; l.UserID != nil && *l.UserID == userID {
			cp := *l
			res = append(res, &cp)
		}
	}
	return res, nil
}

// AuditActions returns every recorded action in insertion order.
func (s *Store) AuditActions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.audits))
	for _, l := range s.audits {
		out = append(out, l.Action)
	}
	return out
}

// TaskCount returns the number of stored tasks.
func (s *Store) TaskCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
