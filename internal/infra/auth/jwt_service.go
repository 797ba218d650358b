// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fittrack/config"
	"fittrack/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Each token purpose is signed with its own secret so a leaked refresh secret
// cannot forge access tokens, and vice versa.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	resetSecret   string        // Secret key for signing password-reset tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	resetTTL      time.Duration // Time-to-live for password-reset tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" || cfg.SecretKey.Reset == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		resetSecret:   cfg.SecretKey.Reset,
		accessTTL:     time.Minute * 15,
		refreshTTL:    time.Hour * 24 * 7,
		resetTTL:      time.Hour,
	}, nil
}

// GeneratePair creates a new access token and refresh token for a given user.
func (s *jwtService) GeneratePair(userID uuid.UUID) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, service.PurposeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, service.PurposeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateResetToken creates a password-reset token with an hour-scale expiry.
func (s *jwtService) GenerateResetToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID, service.PurposePasswordReset, s.resetTTL, s.resetSecret)
}

// Verify checks the signature, expiry and purpose of a token string.
// Expiry is reported before any other claim check so callers can tell a stale
// token apart from a forged one.
func (s *jwtService) Verify(tokenString string, purpose service.TokenPurpose) (*service.Claims, error) {
	secret, err := s.secretFor(purpose)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	if tokenPurpose, _ := claims["purpose"].(string); tokenPurpose != string(purpose) {
		return nil, service.ErrTokenInvalid
	}

	subject, _ := claims["sub"].(string)
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, service.ErrTokenInvalid
	}

	return &service.Claims{
		UserID:  userID,
		Purpose: purpose,
	}, nil
}

// AccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) secretFor(purpose service.TokenPurpose) (string, error) {
	switch purpose {
	case service.PurposeAccess:
		return s.accessSecret, nil
	case service.PurposeRefresh:
		return s.refreshSecret, nil
	case service.PurposePasswordReset:
		return s.resetSecret, nil
	default:
		return "", service.ErrTokenInvalid
	}
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, purpose service.TokenPurpose, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     userID.String(),     // Subject (who the token is for)
		"iat":     now.Unix(),          // Issued At
		"exp":     now.Add(ttl).Unix(), // Expiration Time
		"purpose": string(purpose),     // What the token may be used for
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
