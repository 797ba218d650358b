package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRecordsPerPage = 20
	maxRecordsPerPage     = 100
)

// workoutService implements the WorkoutUsecase interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	logger      *slog.Logger
}

// WorkoutServiceParams holds dependencies for WorkoutService, injected by Fx.
type WorkoutServiceParams struct {
	fx.In

	WorkoutRepo repository.WorkoutRepository
	Logger      *slog.Logger
}

// NewWorkoutService is the constructor for workoutService.
func NewWorkoutService(params WorkoutServiceParams) usecase.WorkoutUsecase {
	return &workoutService{
		workoutRepo: params.WorkoutRepo,
		logger:      params.Logger,
	}
}

func (srv *workoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// exercisesFromInput maps submitted exercises onto domain values.
func exercisesFromInput(inputs []usecase.ExerciseInput) []entity.Exercise {
	exercises := make([]entity.Exercise, 0, len(inputs))
	for _, ex := range inputs {
		sets := make([]entity.ExerciseSet, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			sets = append(sets, entity.ExerciseSet{
				Reps:            set.Reps,
				Weight:          set.Weight,
				DurationSeconds: set.DurationSeconds,
				RestSeconds:     set.RestSeconds,
				Effort:          set.Effort,
			})
		}
		exercises = append(exercises, entity.Exercise{
			Name: ex.Name,
			Sets: sets,
		})
	}

	return exercises
}

// CreateWorkout persists a new workout for the owner. The total volume is
// always derived from the submitted sets; a client cannot supply its own.
func (srv *workoutService) CreateWorkout(ctx context.Context, ownerID uuid.UUID, input *usecase.WorkoutInput) (*entity.Workout, error) {
	exercises := exercisesFromInput(input.Exercises)

	now := time.Now()
	workout := &entity.Workout{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Name:            input.Name,
		Date:            input.Date,
		Exercises:       exercises,
		TotalVolume:     entity.ComputeTotalVolume(exercises),
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.workoutRepo.Create(ctx, workout); err != nil {
		return nil, errors.Wrap(err, "failed to create workout")
	}

	srv.log(ctx).Debug("Workout created", slog.Any("workoutID", workout.ID), slog.Any("ownerID", ownerID))

	return workout, nil
}

// GetWorkout loads one workout. A record owned by someone else is reported as
// absent, never as forbidden.
func (srv *workoutService) GetWorkout(ctx context.Context, ownerID, workoutID uuid.UUID) (*entity.Workout, error) {
	workout, err := srv.findOwned(ctx, ownerID, workoutID)
	if err != nil {
		return nil, err
	}

	return workout, nil
}

// ListWorkouts returns one page of the owner's workouts, newest first.
func (srv *workoutService) ListWorkouts(ctx context.Context, ownerID uuid.UUID, input *usecase.ListWorkoutsInput) (*usecase.ListWorkoutsOutput, error) {
	page, perPage := normalizePage(input.Page, input.PerPage)

	workouts, total, err := srv.workoutRepo.FindByOwner(ctx, ownerID, repository.ListWorkoutsOptions{
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workouts")
	}

	return &usecase.ListWorkoutsOutput{
		Workouts: workouts,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}, nil
}

// UpdateWorkout replaces the mutable fields of an owned workout and recomputes
// its total volume from the submitted sets.
func (srv *workoutService) UpdateWorkout(ctx context.Context, ownerID, workoutID uuid.UUID, input *usecase.WorkoutInput) (*entity.Workout, error) {
	workout, err := srv.findOwned(ctx, ownerID, workoutID)
	if err != nil {
		return nil, err
	}

	exercises := exercisesFromInput(input.Exercises)

	workout.Name = input.Name
	workout.Date = input.Date
	workout.Exercises = exercises
	workout.TotalVolume = entity.ComputeTotalVolume(exercises)
	workout.DurationMinutes = input.DurationMinutes
	workout.Notes = input.Notes
	workout.UpdatedAt = time.Now()

	if err := srv.workoutRepo.Update(ctx, workout); err != nil {
		return nil, errors.Wrap(err, "failed to store workout update")
	}

	return workout, nil
}

// DeleteWorkout removes one owned workout.
func (srv *workoutService) DeleteWorkout(ctx context.Context, ownerID, workoutID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, ownerID, workoutID); err != nil {
		return err
	}

	if err := srv.workoutRepo.Delete(ctx, workoutID); err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "workout deletion failed")
		}

		return errors.Wrap(err, "failed to delete workout")
	}

	srv.log(ctx).Debug("Workout deleted", slog.Any("workoutID", workoutID), slog.Any("ownerID", ownerID))

	return nil
}

// findOwned loads a workout and enforces ownership.
func (srv *workoutService) findOwned(ctx context.Context, ownerID, workoutID uuid.UUID) (*entity.Workout, error) {
	workout, err := srv.workoutRepo.FindByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "workout lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load workout")
	}

	if workout.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "workout lookup failed")
	}

	return workout, nil
}

// normalizePage clamps pagination parameters to sane bounds.
func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultRecordsPerPage
	}
	if perPage > maxRecordsPerPage {
		perPage = maxRecordsPerPage
	}

	return page, perPage
}
