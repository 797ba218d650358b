package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalVolume(t *testing.T) {
	exercises := []Exercise{
		{
			Name: "Bench Press",
			Sets: []ExerciseSet{
				{Reps: 10, Weight: 50},
				{Reps: 8, Weight: 55},
			},
		},
	}

	assert.InDelta(t, 940.0, ComputeTotalVolume(exercises), 1e-9)
}

func TestComputeTotalVolume_MultipleExercises(t *testing.T) {
	exercises := []Exercise{
		{
			Name: "Squat",
			Sets: []ExerciseSet{
				{Reps: 5, Weight: 100},
				{Reps: 5, Weight: 100},
			},
		},
		{
			Name: "Plank",
			// Bodyweight holds carry no load; they contribute nothing to volume.
			Sets: []ExerciseSet{
				{Reps: 1, Weight: 0, DurationSeconds: 60},
			},
		},
	}

	assert.InDelta(t, 1000.0, ComputeTotalVolume(exercises), 1e-9)
}

func TestComputeTotalVolume_Empty(t *testing.T) {
	assert.Zero(t, ComputeTotalVolume(nil))
	assert.Zero(t, ComputeTotalVolume([]Exercise{}))
}
