package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/srinjoywork/Module-5/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	// GetByID is deliberately not creator-scoped: the service checks
	// existence first, then ownership, so a missing task is 404 for
	// everyone and a foreign task is 403.
	GetByID(ctx context.Context, id uuid.UUID) (dom.Task, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]dom.Task, error)
	CountByCreator(ctx context.Context, creatorID uuid.UUID) (int, error)
	Update(ctx context.Context, id uuid.UUID, patch dom.Task) (dom.Task, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (dom.Task, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (title, subject, priority, completed, creator_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, subject, priority, completed, creator_id, created_at, updated_at, deleted_at`
	var out dom.Task
	err := r.db.QueryRow(ctx, query, t.Title, t.Subject, t.Priority, t.Completed, t.CreatorID).Scan(
		&out.ID, &out.Title, &out.Subject, &out.Priority, &out.Completed, &out.CreatorID,
		&out.CreatedAt, &out.UpdatedAt, &out.DeletedAt,
	)
	return out, err
}

func (r *PGTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (dom.Task, error) {
	query := `
		SELECT id, title, subject, priority, completed, creator_id, created_at, updated_at, deleted_at
		FROM tasks WHERE id = $1 AND deleted_at IS NULL`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Subject, &t.Priority, &t.Completed, &t.CreatorID,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	)
	return t, err
}

// ListByCreator returns one page of the creator's live tasks, newest first.
// The creator filter lives in the query itself; tasks of other accounts are
// never materialized.
func (r *PGTaskRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]dom.Task, error) {
	query := `
		SELECT id, title, subject, priority, completed, creator_id, created_at, updated_at, deleted_at
		FROM tasks WHERE creator_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, creatorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Subject, &t.Priority, &t.Completed, &t.CreatorID,
			&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) CountByCreator(ctx context.Context, creatorID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE creator_id = $1 AND deleted_at IS NULL`,
		creatorID,
	).Scan(&n)
	return n, err
}

func (r *PGTaskRepo) Update(ctx context.Context, id uuid.UUID, patch dom.Task) (dom.Task, error) {
	query := `
		UPDATE tasks SET title = $2, subject = $3, priority = $4, completed = $5, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, title, subject, priority, completed, creator_id, created_at, updated_at, deleted_at`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, patch.Title, patch.Subject, patch.Priority, patch.Completed).Scan(
		&t.ID, &t.Title, &t.Subject, &t.Priority, &t.Completed, &t.CreatorID,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	)
	return t, err
}

func (r *PGTaskRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (dom.Task, error) {
	query := `
		UPDATE tasks SET completed = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, title, subject, priority, completed, creator_id, created_at, updated_at, deleted_at`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, completed).Scan(
		&t.ID, &t.Title, &t.Subject, &t.Priority, &t.Completed, &t.CreatorID,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	)
	return t, err
}

func (r *PGTaskRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`UPDATE tasks SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, now)
	return err
}
