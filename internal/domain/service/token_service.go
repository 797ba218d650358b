package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fittrack/internal/errors"
)

// TokenPurpose discriminates what a token may be used for. A token is only
// accepted by the operation matching its purpose: a refresh token never
// authorizes resource access and a reset token never authorizes login.
type TokenPurpose string

const (
	// PurposeAccess marks short-lived tokens authorizing resource requests.
	PurposeAccess TokenPurpose = "access"

	// PurposeRefresh marks long-lived tokens used solely to mint new pairs.
	PurposeRefresh TokenPurpose = "refresh"

	// PurposePasswordReset marks hour-scale tokens for the reset flow.
	PurposePasswordReset TokenPurpose = "password_reset"
)

// Verification failures are collapsed into two cases so callers can
// distinguish "come back with a fresh token" from "this token is garbage"
// without leaking which internal check failed.
var (
	// ErrTokenExpired is returned when a structurally valid token is past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned for signature, structure, or purpose failures.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims defines the custom claims carried by the JWT tokens.
type Claims struct {
	UserID  uuid.UUID
	Purpose TokenPurpose
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying purpose-tagged tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GeneratePair creates a new access/refresh token pair for a subject.
	GeneratePair(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// GenerateResetToken creates a short-lived password-reset token for a subject.
	GenerateResetToken(userID uuid.UUID) (string, error)

	// Verify checks signature, expiry and purpose of a token.
	// Returns ErrTokenExpired past expiry, ErrTokenInvalid otherwise.
	Verify(tokenString string, purpose TokenPurpose) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
