package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/config"
)

func newTestHasherConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			// Low cost keeps the test fast; production uses 12.
			BcryptCost: 4,
		},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:      8,
			RequireNumbers: true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	hash, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123456", hash)

	assert.True(t, hasher.Check("pw123456", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	first, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123456")
	require.NoError(t, err)

	// A fresh random salt per hash means two hashes of the same
	// password never collide.
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_MalformedHashIsMismatch(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	assert.False(t, hasher.Check("pw123456", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("pw123456", ""))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	assert.NoError(t, hasher.ValidatePasswordStrength("pw123456"))
	assert.Error(t, hasher.ValidatePasswordStrength("short1"))
	assert.Error(t, hasher.ValidatePasswordStrength("nodigitshere"))
}

func TestBcryptHasher_DefaultsWhenUnconfigured(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.Error(t, hasher.ValidatePasswordStrength("seven77"))
	assert.NoError(t, hasher.ValidatePasswordStrength("eightch8"))
}
