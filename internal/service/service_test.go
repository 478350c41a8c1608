package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	dom "github.com/srinjoywork/Module-5/internal/domain"
)

// In-memory fakes standing in for the Postgres repos. They return
// pgx.ErrNoRows on misses and a pgconn unique-violation on duplicate
// emails, the same surface the services see in production.

type memAccountRepo struct {
	mu       sync.Mutex
	byEmail  map[string]dom.Account
	byID     map[uuid.UUID]dom.Account
	owned    map[uuid.UUID]map[uuid.UUID]bool
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{
		byEmail: make(map[string]dom.Account),
		byID:    make(map[uuid.UUID]dom.Account),
		owned:   make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"}
}

func (r *memAccountRepo) GetByEmail(_ context.Context, email string) (dom.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byEmail[email]
	if !ok {
		return dom.Account{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *memAccountRepo) GetByID(_ context.Context, id uuid.UUID) (dom.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return dom.Account{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *memAccountRepo) Create(_ context.Context, email, name, passwordHash string) (dom.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[email]; exists {
		return dom.Account{}, uniqueViolation()
	}
	a := dom.Account{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	r.byEmail[email] = a
	r.byID[a.ID] = a
	return a, nil
}

func (r *memAccountRepo) RecordTaskCreated(_ context.Context, accountID, taskID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owned[accountID] == nil {
		r.owned[accountID] = make(map[uuid.UUID]bool)
	}
	r.owned[accountID][taskID] = true
	return nil
}

func (r *memAccountRepo) RecordTaskDeleted(_ context.Context, accountID, taskID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.owned[accountID], taskID)
	return nil
}

func (r *memAccountRepo) ListOwnedTaskIDs(_ context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uuid.UUID
	for id := range r.owned[accountID] {
		ids = append(ids, id)
	}
	return ids, nil
}

type memTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]dom.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[uuid.UUID]dom.Task)}
}

func (r *memTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	t.ID = uuid.New()
	t.CreatedAt = now
	t.UpdatedAt = now
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id uuid.UUID) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.DeletedAt != nil {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *memTaskRepo) ListByCreator(_ context.Context, creatorID uuid.UUID, limit, offset int) ([]dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []dom.Task
	for _, t := range r.tasks {
		if t.CreatorID == creatorID && t.DeletedAt == nil {
			all = append(all, t)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *memTaskRepo) CountByCreator(_ context.Context, creatorID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.tasks {
		if t.CreatorID == creatorID && t.DeletedAt == nil {
			n++
		}
	}
	return n, nil
}

func (r *memTaskRepo) Update(_ context.Context, id uuid.UUID, patch dom.Task) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.DeletedAt != nil {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Title = patch.Title
	t.Subject = patch.Subject
	t.Priority = patch.Priority
	t.Completed = patch.Completed
	t.UpdatedAt = time.Now()
	r.tasks[id] = t
	return t, nil
}

func (r *memTaskRepo) SetCompleted(_ context.Context, id uuid.UUID, completed bool) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.DeletedAt != nil {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Completed = completed
	t.UpdatedAt = time.Now()
	r.tasks[id] = t
	return t, nil
}

func (r *memTaskRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.DeletedAt != nil {
		return nil
	}
	now := time.Now()
	t.DeletedAt = &now
	r.tasks[id] = t
	return nil
}
