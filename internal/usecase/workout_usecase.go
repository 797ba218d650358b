package usecase

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ExerciseSetInput is one set of an exercise as submitted by the client.
type ExerciseSetInput struct {
	Reps            int
	Weight          float64
	DurationSeconds int
	RestSeconds     int
	Effort          int
}

// ExerciseInput is one exercise with its sets as submitted by the client.
type ExerciseInput struct {
	Name string
	Sets []ExerciseSetInput
}

// WorkoutInput defines the data for creating or fully updating a workout.
// The submitted payload never carries a volume; it is always derived.
type WorkoutInput struct {
	Name            string
	Date            time.Time
	Exercises       []ExerciseInput
	DurationMinutes *int
	Notes           string
}

// ListWorkoutsInput controls pagination of a user's workout listing.
type ListWorkoutsInput struct {
	Page    int
	PerPage int
}

// ListWorkoutsOutput is one page of a user's workout listing.
type ListWorkoutsOutput struct {
	Workouts []*entity.Workout
	Total    int64
	Page     int
	PerPage  int
}

// WorkoutUsecase defines the interface for workout CRUD operations.
// Every operation is scoped to the authenticated owner; records owned by
// someone else are indistinguishable from absent ones.
type WorkoutUsecase interface {
	CreateWorkout(ctx context.Context, ownerID uuid.UUID, input *WorkoutInput) (*entity.Workout, error)
	GetWorkout(ctx context.Context, ownerID, workoutID uuid.UUID) (*entity.Workout, error)
	ListWorkouts(ctx context.Context, ownerID uuid.UUID, input *ListWorkoutsInput) (*ListWorkoutsOutput, error)
	UpdateWorkout(ctx context.Context, ownerID, workoutID uuid.UUID, input *WorkoutInput) (*entity.Workout, error)
	DeleteWorkout(ctx context.Context, ownerID, workoutID uuid.UUID) error
}
