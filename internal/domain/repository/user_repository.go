// Package repository defines the persistence interfaces the domain depends on.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"

	"fittrack/internal/errors"
)

// Sentinel errors returned by repositories so the use cases can translate them
// into domain errors without knowing the storage engine.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when an insert violates the unique email index.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ListUsersOptions controls pagination of the admin user listing.
type ListUsersOptions struct {
	Offset int
	Limit  int
}

// UserRepository abstracts persistence of user accounts.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID. Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by lower-cased email. Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdateLastLogin records the timestamp of a successful login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdatePassword replaces the stored credential hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes the user document. Returns ErrUserNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns a page of users together with the total count.
	List(ctx context.Context, opts ListUsersOptions) ([]*entity.User, int64, error)
}
