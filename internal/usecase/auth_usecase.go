// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput defines the data required to refresh a session.
type RefreshTokenInput struct {
	RefreshToken string
}

// ResetPasswordInput defines the data required to complete a password reset.
type ResetPasswordInput struct {
	ResetToken  string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns the account and a fresh token pair after registration or login.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// TokenPairOutput returns a fresh token pair after a refresh.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*TokenPairOutput, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	Logout(ctx context.Context, userID uuid.UUID) error
}
