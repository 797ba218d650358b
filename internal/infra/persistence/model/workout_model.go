package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fittrack/internal/domain/entity"
)

// WorkoutModel is the document stored in the workouts collection.
// Exercises and their sets are embedded, matching how a session is read and
// written as one unit.
type WorkoutModel struct {
	ID              string          `bson:"_id"`
	OwnerID         string          `bson:"ownerId"`
	Name            string          `bson:"name"`
	Date            time.Time       `bson:"date"`
	Exercises       []ExerciseModel `bson:"exercises"`
	TotalVolume     float64         `bson:"totalVolume"`
	DurationMinutes *int            `bson:"durationMinutes,omitempty"`
	Notes           string          `bson:"notes,omitempty"`
	CreatedAt       time.Time       `bson:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt"`
}

// ExerciseModel is one embedded exercise of a workout document.
type ExerciseModel struct {
	Name string             `bson:"name"`
	Sets []ExerciseSetModel `bson:"sets"`
}

// ExerciseSetModel is one embedded set of an exercise.
type ExerciseSetModel struct {
	Reps            int     `bson:"reps"`
	Weight          float64 `bson:"weight"`
	DurationSeconds int     `bson:"durationSeconds,omitempty"`
	RestSeconds     int     `bson:"restSeconds,omitempty"`
	Effort          int     `bson:"effort,omitempty"`
}

// WorkoutSummaryModel is the projection produced by the statistics
// aggregation pipeline.
type WorkoutSummaryModel struct {
	Date            time.Time              `bson:"date"`
	DurationMinutes *int                   `bson:"durationMinutes,omitempty"`
	TotalVolume     float64                `bson:"totalVolume"`
	Exercises       []ExerciseSummaryModel `bson:"exercises"`
}

// ExerciseSummaryModel is the per-exercise slice of a summary projection.
type ExerciseSummaryModel struct {
	Name     string `bson:"name"`
	SetCount int    `bson:"setCount"`
}

// FromWorkoutDomain maps a domain entity to its persistence document.
func FromWorkoutDomain(workout *entity.Workout) *WorkoutModel {
	exercises := make([]ExerciseModel, 0, len(workout.Exercises))
	for _, exercise := range workout.Exercises {
		sets := make([]ExerciseSetModel, 0, len(exercise.Sets))
		for _, set := range exercise.Sets {
			sets = append(sets, ExerciseSetModel{
				Reps:            set.Reps,
				Weight:          set.Weight,
				DurationSeconds: set.DurationSeconds,
				RestSeconds:     set.RestSeconds,
				Effort:          set.Effort,
			})
		}
		exercises = append(exercises, ExerciseModel{Name: exercise.Name, Sets: sets})
	}

	return &WorkoutModel{
		ID:              workout.ID.String(),
		OwnerID:         workout.OwnerID.String(),
		Name:            workout.Name,
		Date:            workout.Date,
		Exercises:       exercises,
		TotalVolume:     workout.TotalVolume,
		DurationMinutes: workout.DurationMinutes,
		Notes:           workout.Notes,
		CreatedAt:       workout.CreatedAt,
		UpdatedAt:       workout.UpdatedAt,
	}
}

// ToWorkoutDomain maps a persistence document back to the domain entity.
func ToWorkoutDomain(m *WorkoutModel) (*entity.Workout, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt workout id %q", m.ID)
	}
	ownerID, err := uuid.Parse(m.OwnerID)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt workout owner id %q", m.OwnerID)
	}

	exercises := make([]entity.Exercise, 0, len(m.Exercises))
	for _, exercise := range m.Exercises {
		sets := make([]entity.ExerciseSet, 0, len(exercise.Sets))
		for _, set := range exercise.Sets {
			sets = append(sets, entity.ExerciseSet{
				Reps:            set.Reps,
				Weight:          set.Weight,
				DurationSeconds: set.DurationSeconds,
				RestSeconds:     set.RestSeconds,
				Effort:          set.Effort,
			})
		}
		exercises = append(exercises, entity.Exercise{Name: exercise.Name, Sets: sets})
	}

	return &entity.Workout{
		ID:              id,
		OwnerID:         ownerID,
		Name:            m.Name,
		Date:            m.Date,
		Exercises:       exercises,
		TotalVolume:     m.TotalVolume,
		DurationMinutes: m.DurationMinutes,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

// ToWorkoutSummaryDomain maps an aggregation projection to its domain shape.
func ToWorkoutSummaryDomain(m *WorkoutSummaryModel) entity.WorkoutSummary {
	exercises := make([]entity.ExerciseSummary, 0, len(m.Exercises))
	for _, exercise := range m.Exercises {
		exercises = append(exercises, entity.ExerciseSummary{
			Name:     exercise.Name,
			SetCount: exercise.SetCount,
		})
	}

	return entity.WorkoutSummary{
		Date:            m.Date,
		DurationMinutes: m.DurationMinutes,
		TotalVolume:     m.TotalVolume,
		Exercises:       exercises,
	}
}
