package repository

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"

	"fittrack/internal/errors"
)

// ErrWorkoutNotFound is returned when no workout matches the lookup.
var ErrWorkoutNotFound = errors.New("workout not found")

// ListWorkoutsOptions controls pagination of a user's workout listing.
// Results are ordered by date descending.
type ListWorkoutsOptions struct {
	Offset int
	Limit  int
}

// WorkoutRepository abstracts persistence of workout records.
type WorkoutRepository interface {
	// Create persists a new workout record.
	Create(ctx context.Context, workout *entity.Workout) error

	// FindByID retrieves a workout by ID. Returns ErrWorkoutNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error)

	// FindByOwner returns a page of the owner's workouts with the total count.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, opts ListWorkoutsOptions) ([]*entity.Workout, int64, error)

	// Update persists changes to an existing workout.
	Update(ctx context.Context, workout *entity.Workout) error

	// Delete removes one workout. Returns ErrWorkoutNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByOwner removes all of the owner's workouts and returns the count removed.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// CountByOwnerSince counts the owner's workouts dated at or after the given instant.
	CountByOwnerSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int64, error)

	// SummarizeByOwner projects all of the owner's workouts down to the fields
	// the statistics fold needs, using the store's aggregation primitives.
	SummarizeByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.WorkoutSummary, error)
}
