package impl

import (
	"context"
	"testing"
	"time"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/domain/service"
	mockRepo "fittrack/internal/mocks/repository"
	mockSvc "fittrack/internal/mocks/service"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func activeUser(id uuid.UUID, email string) *entity.User {
	return &entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: "$2a$12$stored-hash",
		Role:         entity.RoleUser,
		IsActive:     true,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:     "Alice@Example.com",
		Password:  "pw123456",
		FirstName: "Alice",
		LastName:  "Smith",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("pw123456").Return(nil)
	fx.hasher.EXPECT().Hash("pw123456").Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "hashed-password", user.PasswordHash)
			assert.Equal(t, entity.RoleUser, user.Role)
			assert.True(t, user.IsActive)
			assert.False(t, user.IsSuspended)
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		GeneratePair(mock.AnythingOfType("uuid.UUID")).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "pw123456",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("pw123456").Return(nil)
	fx.hasher.EXPECT().Hash("pw123456").Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserExists))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "short",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength("short").
		Return(errors.Wrap(domainerrors.ErrPasswordStrength, "too short"))

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := activeUser(userID, "alice@example.com")

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("pw123456", user.PasswordHash).Return(true)
	fx.userRepo.EXPECT().
		UpdateLastLogin(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.tokenService.EXPECT().GeneratePair(userID).Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Alice@Example.COM",
		Password: "pw123456",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User.LastLoginAt)
	assert.WithinDuration(t, time.Now(), *output.User.LastLoginAt, time.Second)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(uuid.New(), "alice@example.com")

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "pw123456",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// A wrong password and a nonexistent account must be indistinguishable to the caller.
func TestAuthService_Login_FailureModesIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(uuid.New(), "alice@example.com")

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "pw123456",
	})

	require.Error(t, wrongPasswordErr)
	require.Error(t, unknownEmailErr)
	assert.True(t, errors.Is(wrongPasswordErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownEmailErr, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeUser(uuid.New(), "alice@example.com")
	user.IsActive = false

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "pw123456",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := activeUser(userID, "alice@example.com")

	fx.tokenService.EXPECT().
		Verify("refresh-token", service.PurposeRefresh).
		Return(&service.Claims{UserID: userID, Purpose: service.PurposeRefresh}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().GeneratePair(userID).Return("new-access", "new-refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_RefreshToken_Rejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		Verify("bad-token", service.PurposeRefresh).
		Return(nil, service.ErrTokenInvalid)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "bad-token"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestAuthService_RefreshToken_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := activeUser(userID, "alice@example.com")
	user.IsActive = false

	fx.tokenService.EXPECT().
		Verify("refresh-token", service.PurposeRefresh).
		Return(&service.Claims{UserID: userID, Purpose: service.PurposeRefresh}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestAuthService_RequestPasswordReset_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := activeUser(userID, "alice@example.com")

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.tokenService.EXPECT().GenerateResetToken(userID).Return("reset-token", nil)
	fx.mailer.EXPECT().SendPasswordReset(ctx, "alice@example.com", "reset-token").Return(nil)

	err := fx.service.RequestPasswordReset(ctx, "alice@example.com")

	require.NoError(t, err)
}

// The forgot-password flow must not reveal whether the address has an account.
func TestAuthService_RequestPasswordReset_UnknownEmailStillSucceeds(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.RequestPasswordReset(ctx, "nobody@example.com")

	require.NoError(t, err)
	fx.mailer.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		Verify("reset-token", service.PurposePasswordReset).
		Return(&service.Claims{UserID: userID, Purpose: service.PurposePasswordReset}, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength("newpass123").Return(nil)
	fx.hasher.EXPECT().Hash("newpass123").Return("new-hash", nil)
	fx.userRepo.EXPECT().UpdatePassword(ctx, userID, "new-hash").Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		ResetToken:  "reset-token",
		NewPassword: "newpass123",
	})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_BadToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		Verify("bad-token", service.PurposePasswordReset).
		Return(nil, service.ErrTokenExpired)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		ResetToken:  "bad-token",
		NewPassword: "newpass123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidResetToken))
}

func TestAuthService_Logout_NoOp(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.Logout(context.Background(), uuid.New())

	require.NoError(t, err)
}
