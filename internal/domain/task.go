package domain

import (
	"time"

	"github.com/google/uuid"
)

// Domain entity: the business object, independent of Gin, Postgres, Redis.
// CreatorID is set once at creation and never reassigned.
type Task struct {
	ID        uuid.UUID
	Title     string
	Subject   string
	Priority  int
	Completed bool
	CreatorID uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
