package impl

import (
	"context"
	"testing"

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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service         usecase.UserUsecase
	userRepo        *mockRepo.MockUserRepository
	workoutRepo     *mockRepo.MockWorkoutRepository
	measurementRepo *mockRepo.MockMeasurementRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	workoutRepo := mockRepo.NewMockWorkoutRepository(t)
	measurementRepo := mockRepo.NewMockMeasurementRepository(t)

	svc := NewUserService(UserServiceParams{
		UserRepo:        userRepo,
		WorkoutRepo:     workoutRepo,
		MeasurementRepo: measurementRepo,
		Logger:          newDiscardLogger(),
	})

	return userServiceFixtures{
		service:         svc,
		userRepo:        userRepo,
		workoutRepo:     workoutRepo,
		measurementRepo: measurementRepo,
	}
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := activeUser(userID, "alice@example.com")

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(expected, nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := activeUser(userID, "alice@example.com")
	existing.FirstName = "Alice"
	existing.LastName = "Smith"

	newFirst := "Alicia"
	input := &usecase.UpdateProfileInput{FirstName: &newFirst}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Alicia", user.FirstName)
	assert.Equal(t, "Smith", user.LastName)
}

func TestUserService_UpdatePreferences_PartialUpdate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := activeUser(userID, "alice@example.com")
	existing.Preferences = entity.UserPreferences{
		FitnessLevel: entity.FitnessLevelBeginner,
		UnitSystem:   entity.UnitSystemMetric,
	}

	level := entity.FitnessLevelAdvanced
	input := &usecase.UpdatePreferencesInput{FitnessLevel: &level}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.UpdatePreferences(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.FitnessLevelAdvanced, user.Preferences.FitnessLevel)
	assert.Equal(t, entity.UnitSystemMetric, user.Preferences.UnitSystem)
}

func TestUserService_DeleteAccount_CascadesOwnedRecords(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.workoutRepo.EXPECT().DeleteByOwner(ctx, userID).Return(int64(3), nil)
	fx.measurementRepo.EXPECT().DeleteByOwner(ctx, userID).Return(int64(2), nil)
	fx.userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	err := fx.service.DeleteAccount(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_DeleteAccount_WorkoutDeleteFailureStopsCascade(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.workoutRepo.EXPECT().
		DeleteByOwner(ctx, userID).
		Return(int64(0), errors.New("store unavailable"))

	err := fx.service.DeleteAccount(ctx, userID)

	require.Error(t, err)
	fx.measurementRepo.AssertNotCalled(t, "DeleteByOwner", mock.Anything, mock.Anything)
	fx.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserService_ListUsers_Pagination(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{activeUser(uuid.New(), "a@example.com")}

	fx.userRepo.EXPECT().
		List(ctx, repository.ListUsersOptions{Offset: 40, Limit: 20}).
		Return(users, int64(41), nil)

	output, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{Page: 3, PerPage: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(41), output.Total)
	assert.Equal(t, 3, output.Page)
	assert.Len(t, output.Users, 1)
}

func TestUserService_SetSuspended(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	targetID := uuid.New()
	existing := activeUser(targetID, "bob@example.com")

	fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(existing, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.True(t, user.IsSuspended)
		}).
		Return(nil)

	err := fx.service.SetSuspended(ctx, targetID, true)

	require.NoError(t, err)
}

func TestUserService_SetSuspended_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	targetID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.SetSuspended(ctx, targetID, true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
