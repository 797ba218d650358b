package usecase

import (
	"context"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// StatsUsecase defines the interface for the per-user analytics summary.
type StatsUsecase interface {
	// GetWorkoutStats derives the analytics summary from the user's workout
	// records. An account with zero workouts yields zero counters and empty
	// rankings, never an error.
	GetWorkoutStats(ctx context.Context, userID uuid.UUID) (*entity.WorkoutStats, error)
}
