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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo        repository.UserRepository
	workoutRepo     repository.WorkoutRepository
	measurementRepo repository.MeasurementRepository
	logger          *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	WorkoutRepo     repository.WorkoutRepository
	MeasurementRepo repository.MeasurementRepository
	Logger          *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:        params.UserRepo,
		workoutRepo:     params.WorkoutRepo,
		measurementRepo: params.MeasurementRepo,
		logger:          params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads the account behind userID.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of input to the account's profile.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile update failed")
		}

		return nil, errors.Wrap(err, "failed to load profile for update")
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.BirthDate != nil {
		user.BirthDate = input.BirthDate
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store profile update")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return user, nil
}

// UpdatePreferences applies the non-nil fields of input to the account's preferences.
func (srv *userService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePreferencesInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "preferences update failed")
		}

		return nil, errors.Wrap(err, "failed to load profile for preferences update")
	}

	if input.FitnessLevel != nil {
		user.Preferences.FitnessLevel = *input.FitnessLevel
	}
	if input.UnitSystem != nil {
		user.Preferences.UnitSystem = *input.UnitSystem
	}
	if input.PrivateProfile != nil {
		user.Preferences.PrivateProfile = *input.PrivateProfile
	}
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store preferences update")
	}

	return user, nil
}

// DeleteAccount removes the account together with its workout and measurement
// records. The deletes are independent writes, ordered so the owned records go
// first; if a later step fails, re-running the operation completes the cleanup.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", userID))

	workouts, err := srv.workoutRepo.DeleteByOwner(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to delete workout records for account")
	}

	measurements, err := srv.measurementRepo.DeleteByOwner(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to delete measurement records for account")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "account deletion failed")
		}

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted",
		slog.Any("userID", userID),
		slog.Int64("workoutsRemoved", workouts),
		slog.Int64("measurementsRemoved", measurements))

	return nil
}

// ListUsers returns one page of accounts, newest first.
func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	page, perPage := normalizePage(input.Page, input.PerPage)

	users, total, err := srv.userRepo.List(ctx, repository.ListUsersOptions{
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.ListUsersOutput{
		Users:   users,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// SetSuspended flips the suspension flag on the target account. Suspension
// blocks administrative actions but does not revoke outstanding tokens.
func (srv *userService) SetSuspended(ctx context.Context, targetID uuid.UUID, suspended bool) error {
	user, err := srv.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "suspension update failed")
		}

		return errors.Wrap(err, "failed to load user for suspension update")
	}

	user.IsSuspended = suspended
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store suspension update")
	}

	srv.log(ctx).Info("Suspension state changed", slog.Any("userID", targetID), slog.Bool("suspended", suspended))

	return nil
}
