package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the domain entity for a registered user.
// Email is unique and immutable after creation; there is no rename flow.
type Account struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
