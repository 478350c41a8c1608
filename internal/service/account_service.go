package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/srinjoywork/Module-5/internal/auth"
	dom "github.com/srinjoywork/Module-5/internal/domain"
	"github.com/srinjoywork/Module-5/internal/repo"
	"github.com/srinjoywork/Module-5/internal/utils"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so a caller cannot enumerate registered accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

var ErrEmailTaken = errors.New("account already exists with this email")

// AccountService handles registration and login.
type AccountService struct {
	repo   repo.AccountRepo
	hasher auth.Hasher
	tokens *auth.TokenManager
}

// NewAccountService returns a new AccountService.
func NewAccountService(r repo.AccountRepo, h auth.Hasher, tm *auth.TokenManager) *AccountService {
	return &AccountService{repo: r, hasher: h, tokens: tm}
}

// Register creates a new account with a hashed password. Uniqueness is
// enforced by the store's constraint, not by a prior lookup, so two
// concurrent registrations for the same email cannot both succeed.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (dom.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return dom.Account{}, err
	}
	a, err := s.repo.Create(ctx, email, name, hash)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Account{}, ErrEmailTaken
		}
		return dom.Account{}, err
	}
	return a, nil
}

// Login verifies credentials and mints a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, dom.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", dom.Account{}, ErrInvalidCredentials
	}
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", dom.Account{}, ErrInvalidCredentials
		}
		return "", dom.Account{}, err
	}
	if !s.hasher.Verify(password, a.PasswordHash) {
		return "", dom.Account{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(a.ID, a.Email)
	if err != nil {
		return "", dom.Account{}, err
	}
	return token, a, nil
}
