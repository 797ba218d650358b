// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the data for a partial profile update.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	BirthDate *time.Time
	Gender    *string
}

// UpdatePreferencesInput defines the data for a partial preferences update.
type UpdatePreferencesInput struct {
	FitnessLevel   *entity.FitnessLevel
	UnitSystem     *entity.UnitSystem
	PrivateProfile *bool
}

// ListUsersInput controls pagination of the admin user listing.
type ListUsersInput struct {
	Page    int
	PerPage int
}

// ListUsersOutput is one page of the admin user listing.
type ListUsersOutput struct {
	Users   []*entity.User
	Total   int64
	Page    int
	PerPage int
}

// UserUsecase defines the interface for profile and account operations.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input *UpdatePreferencesInput) (*entity.User, error)

	// DeleteAccount removes the account and cascades to its workout and
	// measurement records.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	// Admin operations.
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
	SetSuspended(ctx context.Context, targetID uuid.UUID, suspended bool) error
}
