package impl

import (
	"context"
	"testing"
	"time"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	mockRepo "fittrack/internal/mocks/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// workoutServiceFixtures holds all test dependencies for workout service tests.
type workoutServiceFixtures struct {
	service     usecase.WorkoutUsecase
	workoutRepo *mockRepo.MockWorkoutRepository
}

func createTestWorkoutService(t *testing.T) workoutServiceFixtures {
	workoutRepo := mockRepo.NewMockWorkoutRepository(t)

	svc := NewWorkoutService(WorkoutServiceParams{
		WorkoutRepo: workoutRepo,
		Logger:      newDiscardLogger(),
	})

	return workoutServiceFixtures{
		service:     svc,
		workoutRepo: workoutRepo,
	}
}

func TestWorkoutService_CreateWorkout_ComputesVolume(t *testing.T) {
	fx := createTestWorkoutService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.WorkoutInput{
		Name: "Push day",
		Date: time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC),
		Exercises: []usecase.ExerciseInput{
			{
				Name: "Bench Press",
				Sets: []usecase.ExerciseSetInput{
					{Reps: 10, Weight: 50},
					{Reps: 8, Weight: 55},
				},
			},
		},
	}

	fx.workoutRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Workout")).
		Return(nil)

	workout, err := fx.service.CreateWorkout(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, ownerID, workout.OwnerID)
	assert.InDelta(t, 940.0, workout.TotalVolume, 1e-9)
}

func TestWorkoutService_UpdateWorkout_RecomputesVolume(t *testing.T) {
	fx := createTestWorkoutService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	workoutID := uuid.New()
	existing := &entity.Workout{
		ID:      workoutID,
		OwnerID: ownerID,
		Name:    "Push day",
		Exercises: []entity.Exercise{
			{Name: "Bench Press", Sets: []entity.ExerciseSet{{Reps: 10, Weight: 50}}},
		},
		TotalVolume: 500,
	}

	fx.workoutRepo.EXPECT().FindByID(ctx, workoutID).Return(existing, nil)
	fx.workoutRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Workout")).
		Return(nil)

	updated, err := fx.service.UpdateWorkout(ctx, ownerID, workoutID, &usecase.WorkoutInput{
		Name: "Push day",
		Date: time.Now(),
		Exercises: []usecase.ExerciseInput{
			{
				Name: "Bench Press",
				Sets: []usecase.ExerciseSetInput{
					{Reps: 10, Weight: 50},
					{Reps: 8, Weight: 55},
				},
			},
		},
	})

	require.NoError(t, err)
	assert.InDelta(t, 940.0, updated.TotalVolume, 1e-9)
	assert.InDelta(t, entity.ComputeTotalVolume(updated.Exercises), updated.TotalVolume, 1e-9)
}

// A workout owned by someone else must look exactly like a missing one.
func TestWorkoutService_GetWorkout_OtherOwnerReportsNotFound(t *testing.T) {
	fx := createTestWorkoutService(t)

	ctx := context.Background()
	workoutID := uuid.New()
	someoneElse := &entity.Workout{
		ID:      workoutID,
		OwnerID: uuid.New(),
	}

	fx.workoutRepo.EXPECT().FindByID(ctx, workoutID).Return(someoneElse, nil)

	_, err := fx.service.GetWorkout(ctx, uuid.New(), workoutID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestWorkoutService_GetWorkout_Missing(t *testing.T) {
	fx := createTestWorkoutService(t)

	ctx := context.Background()
	workoutID := uuid.New()

	fx.workoutRepo.EXPECT().FindByID(ctx, workoutID).Return(nil, repository.ErrWorkoutNotFound)

	_, err := fx.service.GetWorkout(ctx, uuid.New(), workoutID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestWorkoutService_ListWorkouts_ClampsPagination(t *testing.T) {
	fx := createTestWorkoutService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.workoutRepo.EXPECT().
		FindByOwner(ctx, ownerID, repository.ListWorkoutsOptions{Offset: 0, Limit: 20}).
		Return([]*entity.Workout{}, int64(0), nil)

	output, err := fx.service.ListWorkouts(ctx, ownerID, &usecase.ListWorkoutsInput{Page: 0, PerPage: -5})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 20, output.PerPage)
	assert.Empty(t, output.Workouts)
}

func TestWorkoutService_DeleteWorkout_Success(t *testing.T) {
	fx := createTestWorkoutService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	workoutID := uuid.New()
	existing := &entity.Workout{ID: workoutID, OwnerID: ownerID}

	fx.workoutRepo.EXPECT().FindByID(ctx, workoutID).Return(existing, nil)
	fx.workoutRepo.EXPECT().Delete(ctx, workoutID).Return(nil)

	err := fx.service.DeleteWorkout(ctx, ownerID, workoutID)

	require.NoError(t, err)
}

func TestWorkoutService_DeleteWorkout_OtherOwner(t *testing.T) {
	fx := createTestWorkoutService(t)

	ctx := context.Background()
	workoutID := uuid.New()
	existing := &entity.Workout{ID: workoutID, OwnerID: uuid.New()}

	fx.workoutRepo.EXPECT().FindByID(ctx, workoutID).Return(existing, nil)

	err := fx.service.DeleteWorkout(ctx, uuid.New(), workoutID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	fx.workoutRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
