package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workout represents a single logged training session owned by one account.
type Workout struct {
	ID              uuid.UUID  // Global unique identifier for the workout.
	OwnerID         uuid.UUID  // The account that owns this record.
	Name            string     // e.g. "Push Day", "Long Run".
	Date            time.Time  // When the session took place.
	Exercises       []Exercise // Ordered list of exercises performed.
	TotalVolume     float64    // Derived: sum of weight*reps across all sets. Recomputed on every write.
	DurationMinutes *int       // Declared session length; nil when the user did not record one.
	Notes           string     // Free-text notes.
	CreatedAt       time.Time  // Timestamp of record creation.
	UpdatedAt       time.Time  // Timestamp of the last modification.
}

// Exercise is one movement within a workout, holding its performed sets.
type Exercise struct {
	Name string        // Exercise name, e.g. "Bench Press".
	Sets []ExerciseSet // The sets performed for this exercise.
}

// ExerciseSet records a single set of an exercise.
type ExerciseSet struct {
	Reps            int     // Repetitions performed.
	Weight          float64 // Load in the user's unit system (stored as entered).
	DurationSeconds int     // For timed sets; zero when not applicable.
	RestSeconds     int     // Rest taken after the set.
	Effort          int     // Perceived effort rating, 1-10; zero when not rated.
}

// ComputeTotalVolume derives the training-load metric for a workout:
// the sum of weight*reps over every set of every exercise.
// The stored TotalVolume is always recomputed through this function at
// persistence time and never trusted from client input.
func ComputeTotalVolume(exercises []Exercise) float64 {
	var total float64
	for _, exercise := range exercises {
		for _, set := range exercise.Sets {
			total += set.Weight * float64(set.Reps)
		}
	}

	return total
}

// ExerciseCount returns the number of exercises in the workout.
func (w *Workout) ExerciseCount() int {
	return len(w.Exercises)
}
