// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/domain/service"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail lower-cases the login identifier so email uniqueness is
// case-insensitive everywhere.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register orchestrates the complete account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := time.Now()
	newUser := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Preferences: entity.UserPreferences{
			FitnessLevel: entity.FitnessLevelBeginner,
			UnitSystem:   entity.UnitSystemMetric,
		},
		Role:      entity.RoleUser,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The unique email index is the authority on duplicates; there is no
	// racy pre-check.
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrUserExists, "registration failed")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	accessToken, refreshToken, err := srv.tokenService.GeneratePair(newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{
		User:         newUser,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login orchestrates the user login process. Unknown email, inactive account
// and wrong password all collapse into the same credentials error so the
// response never discloses which check failed.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login attempt on inactive account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Record the login before issuing tokens. A failure between the two is
	// not rolled back; the operations are independent single-document writes.
	now := time.Now()
	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, errors.Wrap(err, "failed to record login timestamp")
	}
	user.LastLoginAt = &now

	accessToken, refreshToken, err := srv.tokenService.GeneratePair(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken verifies a refresh-purpose token and issues a fresh pair for
// the same subject. Any verification failure, and a subject whose account is
// gone or inactive, surfaces as the same refresh error.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.Verify(input.RefreshToken, service.PurposeRefresh)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidRefreshToken, "refresh failed")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidRefreshToken, "refresh failed")
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Refresh attempt on inactive account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidRefreshToken, "refresh failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GeneratePair(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new token pair")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RequestPasswordReset issues a reset token to the account behind the email,
// if there is one. The caller always receives the same acknowledgment, so the
// endpoint cannot be used to enumerate accounts; failures are logged, never
// surfaced.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	srv.log(ctx).Info("Password reset requested", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Failed to look up account for password reset", slog.Any("error", err))
		}

		return nil
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Password reset requested for inactive account", slog.Any("userID", user.ID))

		return nil
	}

	resetToken, err := srv.tokenService.GenerateResetToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate reset token", slog.Any("error", err), slog.Any("userID", user.ID))

		return nil
	}

	if err := srv.mailer.SendPasswordReset(ctx, user.Email, resetToken); err != nil {
		srv.log(ctx).Error("Failed to deliver reset token", slog.Any("error", err), slog.Any("userID", user.ID))
	}

	return nil
}

// ResetPassword verifies a reset-purpose token and replaces the credential hash.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Attempting password reset")

	claims, err := srv.tokenService.Verify(input.ResetToken, service.PurposePasswordReset)
	if err != nil {
		srv.log(ctx).Warn("Reset token rejected", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInvalidResetToken, "password reset failed")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "new password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, claims.UserID, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidResetToken, "password reset failed")
		}

		return errors.Wrap(err, "failed to store new password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", claims.UserID))

	return nil
}

// Logout acknowledges the end of a session. Tokens are not revoked server-side
// and remain valid until their natural expiry.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("User logged out", slog.Any("userID", userID))

	return nil
}
