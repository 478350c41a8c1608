package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/srinjoywork/Module-5/internal/domain"
)

// AccountRepo is the credential store: the durable email -> account mapping
// plus the owned-task bookkeeping kept in lockstep with task create/delete.
type AccountRepo interface {
	GetByEmail(ctx context.Context, email string) (dom.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (dom.Account, error)
	// Create inserts atomically; email uniqueness is a DB constraint, not
	// an application-level check, so concurrent registrations for the same
	// email cannot both succeed.
	Create(ctx context.Context, email, name, passwordHash string) (dom.Account, error)
	RecordTaskCreated(ctx context.Context, accountID, taskID uuid.UUID) error
	RecordTaskDeleted(ctx context.Context, accountID, taskID uuid.UUID) error
	ListOwnedTaskIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)
}

// PGAccountRepo implements AccountRepo with Postgres.
type PGAccountRepo struct {
	db *pgxpool.Pool
}

// NewPGAccountRepo returns a new PGAccountRepo.
func NewPGAccountRepo(db *pgxpool.Pool) *PGAccountRepo {
	return &PGAccountRepo{db: db}
}

// GetByEmail returns the account by email. Emails are case-sensitive.
func (r *PGAccountRepo) GetByEmail(ctx context.Context, email string) (dom.Account, error) {
	var a dom.Account
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at FROM accounts WHERE email = $1`,
		email,
	).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

// GetByID returns the account by ID.
func (r *PGAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (dom.Account, error) {
	var a dom.Account
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at FROM accounts WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

// Create inserts a new account and returns it. A duplicate email surfaces
// as a unique-violation error from the accounts_email_key index.
func (r *PGAccountRepo) Create(ctx context.Context, email, name, passwordHash string) (dom.Account, error) {
	query := `
		INSERT INTO accounts (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, name, password_hash, created_at`
	var a dom.Account
	err := r.db.QueryRow(ctx, query, email, name, passwordHash).Scan(
		&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt,
	)
	return a, err
}

// RecordTaskCreated adds the task to the account's owned set.
func (r *PGAccountRepo) RecordTaskCreated(ctx context.Context, accountID, taskID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO account_tasks (account_id, task_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		accountID, taskID,
	)
	return err
}

// RecordTaskDeleted removes the task from the account's owned set.
func (r *PGAccountRepo) RecordTaskDeleted(ctx context.Context, accountID, taskID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM account_tasks WHERE account_id = $1 AND task_id = $2`,
		accountID, taskID,
	)
	return err
}

// ListOwnedTaskIDs returns the IDs of tasks created by the account.
func (r *PGAccountRepo) ListOwnedTaskIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT task_id FROM account_tasks WHERE account_id = $1`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
