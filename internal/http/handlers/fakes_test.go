package handlers

import (
	"context"
	"sort"
	"time"

	"tasklist/internal/domain"
	"tasklist/internal/repository"
)

// fakeTaskStore is an in-memory TaskStore. Setting failWith makes every
// call return that error, simulating an unreachable store.
type fakeTaskStore struct {
	tasks    map[int64]domain.Task
	users    *fakeUserStore
	nextID   int64
	failWith error
}

func newFakeTaskStore(users *fakeUserStore) *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[int64]domain.Task), users: users, nextID: 1}
}

func (s *fakeTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var res []domain.Task
	for _, t := range s.tasks {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (s *fakeTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	t, ok := s.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (s *fakeTaskStore) Create(ctx context.Context, t *domain.Task) error {
	if s.failWith != nil {
		return s.failWith
	}
	if s.users != nil {
		if _, ok := s.users.users[t.UserID]; !ok {
			return repository.ErrUserMissing
		}
	}
	t.ID = s.nextID
	s.nextID++
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	s.tasks[t.ID] = *t
	return nil
}

func (s *fakeTaskStore) Update(ctx context.Context, t *domain.Task) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.tasks[t.ID]; !ok {
		return repository.ErrNotFound
	}
	s.tasks[t.ID] = *t
	return nil
}

func (s *fakeTaskStore) SetCompleted(ctx context.Context, id int64, completed bool) error {
	if s.failWith != nil {
		return s.failWith
	}
	t, ok := s.tasks[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Completed = completed
	s.tasks[id] = t
	return nil
}

func (s *fakeTaskStore) Delete(ctx context.Context, id int64) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

type fakeUserStore struct {
	users  map[int64]domain.User
	emails map[string]int64
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]domain.User), emails: make(map[string]int64), nextID: 1}
}

func (s *fakeUserStore) Create(ctx context.Context, u *domain.User) error {
	if _, ok := s.emails[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = time.Now()
	s.users[u.ID] = *u
	s.emails[u.Email] = u.ID
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}
