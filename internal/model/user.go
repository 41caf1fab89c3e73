package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	SetImagePath(ctx context.Context, id uuid.UUID, path string) error
}

// User represents a registered user. PasswordDigest holds the hasher output
// and never leaves the service layer.
type User struct {
	ID             uuid.UUID
	Username       string
	PasswordDigest string
	Email          string
	ImagePath      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
