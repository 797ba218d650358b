package impl

import (
	"context"
	"testing"
	"time"

	"fittrack/internal/domain/entity"
	mockRepo "fittrack/internal/mocks/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// statsServiceFixtures holds all test dependencies for stats service tests.
type statsServiceFixtures struct {
	service     usecase.StatsUsecase
	workoutRepo *mockRepo.MockWorkoutRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	workoutRepo := mockRepo.NewMockWorkoutRepository(t)

	svc := NewStatsService(StatsServiceParams{
		WorkoutRepo: workoutRepo,
		Logger:      newDiscardLogger(),
	})

	return statsServiceFixtures{
		service:     svc,
		workoutRepo: workoutRepo,
	}
}

func intPtr(v int) *int { return &v }

func TestStatsService_GetWorkoutStats_ZeroRecords(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.workoutRepo.EXPECT().SummarizeByOwner(ctx, userID).Return([]entity.WorkoutSummary{}, nil)
	fx.workoutRepo.EXPECT().
		CountByOwnerSince(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(int64(0), nil)

	stats, err := fx.service.GetWorkoutStats(ctx, userID)

	require.NoError(t, err)
	assert.Zero(t, stats.TotalWorkouts)
	assert.Zero(t, stats.RecentWorkouts)
	assert.Zero(t, stats.TotalVolume)
	assert.Zero(t, stats.AverageDuration)
	assert.Zero(t, stats.TotalExercises)
	assert.NotNil(t, stats.PopularExercises)
	assert.Empty(t, stats.PopularExercises)
	require.Len(t, stats.WorkoutsByDay, 7)
	for day, bucket := range stats.WorkoutsByDay {
		assert.Equal(t, day, bucket.Day)
		assert.Zero(t, bucket.Count)
	}
}

func TestStatsService_GetWorkoutStats_Folds(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	userID := uuid.New()

	sunday := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)
	monday := sunday.AddDate(0, 0, 1)
	summaries := []entity.WorkoutSummary{
		{
			Date:            sunday,
			DurationMinutes: intPtr(60),
			TotalVolume:     940,
			Exercises: []entity.ExerciseSummary{
				{Name: "Bench Press", SetCount: 2},
				{Name: "Squat", SetCount: 3},
			},
		},
		{
			Date:            monday,
			DurationMinutes: intPtr(30),
			TotalVolume:     500,
			Exercises: []entity.ExerciseSummary{
				{Name: "Bench Press", SetCount: 4},
			},
		},
		{
			Date:        monday.AddDate(0, 0, 7),
			TotalVolume: 100,
			Exercises: []entity.ExerciseSummary{
				{Name: "Deadlift", SetCount: 1},
			},
		},
	}

	fx.workoutRepo.EXPECT().SummarizeByOwner(ctx, userID).Return(summaries, nil)
	fx.workoutRepo.EXPECT().
		CountByOwnerSince(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(int64(2), nil)

	stats, err := fx.service.GetWorkoutStats(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalWorkouts)
	assert.Equal(t, 2, stats.RecentWorkouts)
	assert.InDelta(t, 1540.0, stats.TotalVolume, 1e-9)
	// 60 and 30 averaged; the record without a duration is excluded.
	assert.InDelta(t, 45.0, stats.AverageDuration, 1e-9)
	assert.Equal(t, 4, stats.TotalExercises)

	assert.Equal(t, 1, stats.WorkoutsByDay[int(time.Sunday)].Count)
	assert.Equal(t, 2, stats.WorkoutsByDay[int(time.Monday)].Count)
	assert.Equal(t, 0, stats.WorkoutsByDay[int(time.Friday)].Count)

	require.Len(t, stats.PopularExercises, 3)
	assert.Equal(t, entity.PopularExercise{Name: "Bench Press", Occurrences: 2, TotalSets: 6}, stats.PopularExercises[0])
}

func TestStatsService_GetWorkoutStats_TopFiveWithStableTies(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	userID := uuid.New()

	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	summaries := make([]entity.WorkoutSummary, 0, len(names)+1)
	for _, name := range names {
		summaries = append(summaries, entity.WorkoutSummary{
			Date:      time.Now(),
			Exercises: []entity.ExerciseSummary{{Name: name, SetCount: 1}},
		})
	}
	// One extra appearance pushes F ahead of everything tied at one.
	summaries = append(summaries, entity.WorkoutSummary{
		Date:      time.Now(),
		Exercises: []entity.ExerciseSummary{{Name: "F", SetCount: 2}},
	})

	fx.workoutRepo.EXPECT().SummarizeByOwner(ctx, userID).Return(summaries, nil)
	fx.workoutRepo.EXPECT().
		CountByOwnerSince(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(int64(8), nil)

	stats, err := fx.service.GetWorkoutStats(ctx, userID)

	require.NoError(t, err)
	require.Len(t, stats.PopularExercises, 5)
	assert.Equal(t, "F", stats.PopularExercises[0].Name)
	assert.Equal(t, 2, stats.PopularExercises[0].Occurrences)
	assert.Equal(t, 3, stats.PopularExercises[0].TotalSets)
	// Ties keep first-encountered order.
	assert.Equal(t, "A", stats.PopularExercises[1].Name)
	assert.Equal(t, "B", stats.PopularExercises[2].Name)
	assert.Equal(t, "C", stats.PopularExercises[3].Name)
	assert.Equal(t, "D", stats.PopularExercises[4].Name)
}
