package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/srinjoywork/Module-5/internal/cache"
	dom "github.com/srinjoywork/Module-5/internal/domain"
	"github.com/srinjoywork/Module-5/internal/repo"
)

var (
	ErrNotFound  = errors.New("task not found")
	ErrForbidden = errors.New("not the task owner")
)

const defaultPageSize = 4

// TaskService owns the task lifecycle and enforces the ownership policy:
// only the creator of a task may read, mutate or delete it.
type TaskService struct {
	tasks    repo.TaskRepo
	accounts repo.AccountRepo
	cache    *cache.TaskCache
	sf       singleflight.Group
	pageSize int
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(tasks repo.TaskRepo, accounts repo.AccountRepo, c *cache.TaskCache, pageSize int) *TaskService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &TaskService{tasks: tasks, accounts: accounts, cache: c, pageSize: pageSize}
}

// Create stores a new task owned by the principal and records it in the
// creator's owned set.
func (s *TaskService) Create(ctx context.Context, principal uuid.UUID, title, subject string, priority int, completed bool) (dom.Task, error) {
	t, err := s.tasks.Create(ctx, dom.Task{
		Title:     strings.TrimSpace(title),
		Subject:   strings.TrimSpace(subject),
		Priority:  priority,
		Completed: completed,
		CreatorID: principal,
	})
	if err != nil {
		return dom.Task{}, err
	}
	if err := s.accounts.RecordTaskCreated(ctx, principal, t.ID); err != nil {
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, principal)
	return t, nil
}

// List returns one page of the principal's tasks and the total count.
// The query is creator-scoped by construction; other accounts' tasks are
// never materialized, so there is nothing to post-filter.
func (s *TaskService) List(ctx context.Context, principal uuid.UUID, page int) ([]dom.Task, int, error) {
	if page < 1 {
		page = 1
	}
	if s.cache != nil {
		key := "list:" + principal.String() + ":" + strconv.Itoa(page)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if p, err := s.cache.GetPage(ctx, principal, page); err == nil && p != nil {
				return *p, nil
			}
			p, err := s.loadPage(ctx, principal, page)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetPage(ctx, principal, page, p)
			return p, nil
		})
		if err != nil {
			return nil, 0, err
		}
		p := v.(cache.Page)
		return p.Tasks, p.TotalItems, nil
	}
	p, err := s.loadPage(ctx, principal, page)
	if err != nil {
		return nil, 0, err
	}
	return p.Tasks, p.TotalItems, nil
}

func (s *TaskService) loadPage(ctx context.Context, principal uuid.UUID, page int) (cache.Page, error) {
	total, err := s.tasks.CountByCreator(ctx, principal)
	if err != nil {
		return cache.Page{}, err
	}
	list, err := s.tasks.ListByCreator(ctx, principal, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return cache.Page{}, err
	}
	return cache.Page{Tasks: list, TotalItems: total}, nil
}

// GetByID loads a task and authorizes the principal against it.
// The order is fixed: existence first (404 for everyone), ownership second.
func (s *TaskService) GetByID(ctx context.Context, principal, id uuid.UUID) (dom.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	if t.CreatorID != principal {
		return dom.Task{}, ErrForbidden
	}
	return t, nil
}

// Update replaces title, subject, priority and completed. Only the creator
// may update; the task is untouched on a failed check.
func (s *TaskService) Update(ctx context.Context, principal, id uuid.UUID, title, subject string, priority int, completed bool) (dom.Task, error) {
	existing, err := s.GetByID(ctx, principal, id)
	if err != nil {
		return dom.Task{}, err
	}
	patch := existing
	patch.Title = strings.TrimSpace(title)
	patch.Subject = strings.TrimSpace(subject)
	patch.Priority = priority
	patch.Completed = completed
	t, err := s.tasks.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, principal)
	return t, nil
}

// ToggleComplete flips the completed flag.
func (s *TaskService) ToggleComplete(ctx context.Context, principal, id uuid.UUID) (dom.Task, error) {
	existing, err := s.GetByID(ctx, principal, id)
	if err != nil {
		return dom.Task{}, err
	}
	t, err := s.tasks.SetCompleted(ctx, id, !existing.Completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, principal)
	return t, nil
}

// Delete removes the task and its entry in the creator's owned set.
func (s *TaskService) Delete(ctx context.Context, principal, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, principal, id); err != nil {
		return err
	}
	if err := s.tasks.SoftDelete(ctx, id); err != nil {
		return err
	}
	if err := s.accounts.RecordTaskDeleted(ctx, principal, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, principal)
	return nil
}

func (s *TaskService) invalidateCache(ctx context.Context, principal uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, principal)
	}
}
