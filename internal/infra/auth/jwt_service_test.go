package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/config"
	"fittrack/internal/domain/service"
)

func newTestTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.SecretKey.Reset = "test_reset_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndVerifyPair(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GeneratePair(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.Verify(accessToken, service.PurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.PurposeAccess, accessClaims.Purpose)

	// Validate refresh token
	refreshClaims, err := jwtService.Verify(refreshToken, service.PurposeRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.PurposeRefresh, refreshClaims.Purpose)
}

func TestJWTService_PurposeCrossUseRejected(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := jwtService.GeneratePair(userID)
	require.NoError(t, err)

	// A refresh token must not pass an access-only check, and vice versa.
	claims, err := jwtService.Verify(refreshToken, service.PurposeAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)

	claims, err = jwtService.Verify(accessToken, service.PurposeRefresh)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)

	claims, err = jwtService.Verify(accessToken, service.PurposePasswordReset)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_ResetToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	userID := uuid.New()
	resetToken, err := jwtService.GenerateResetToken(userID)
	require.NoError(t, err)

	claims, err := jwtService.Verify(resetToken, service.PurposePasswordReset)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	// A reset token must not authorize login or refresh.
	_, err = jwtService.Verify(resetToken, service.PurposeAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_ExpiredTokenReportsExpiry(t *testing.T) {
	cfg := newTestTokenConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Craft a structurally valid access token that is already past expiry.
	userID := uuid.New()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     userID.String(),
		"iat":     time.Now().Add(-time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Minute).Unix(),
		"purpose": string(service.PurposeAccess),
	})
	tokenString, err := expired.SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	// Expiry must surface as ErrTokenExpired, never ErrTokenInvalid.
	claims, err := jwtService.Verify(tokenString, service.PurposeAccess)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.NotErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	claims, err := jwtService.Verify("clearly-not-a-jwt-token-format", service.PurposeAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	accessToken, _, err := jwtService.GeneratePair(uuid.New())
	require.NoError(t, err)

	tampered := accessToken + "x"
	claims, err := jwtService.Verify(tampered, service.PurposeAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
