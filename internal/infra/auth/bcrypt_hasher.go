// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"fittrack/config"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/service"
)

const (
	defaultCost      = 12
	defaultMinLength = 8
	// bcrypt silently truncates beyond 72 bytes; reject instead.
	defaultMaxLength = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	strength := config.PasswordStrengthConfig{
		MinLength: defaultMinLength,
		MaxLength: defaultMaxLength,
	}
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}
	if strength.MinLength <= 0 {
		strength.MinLength = defaultMinLength
	}
	if strength.MaxLength <= 0 || strength.MaxLength > defaultMaxLength {
		strength.MaxLength = defaultMaxLength
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation and encodes salt and cost
// into the self-describing hash string.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
// A malformed stored hash compares as a mismatch, never as a fatal error.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength verifies the plaintext against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.strength.MinLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too short")
	}
	if len(password) > h.strength.MaxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password too long")
	}

	if h.strength.RequireNumbers && !strings.ContainsFunc(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires at least one digit")
	}
	if h.strength.RequireLetters && !strings.ContainsFunc(password, unicode.IsLetter) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires at least one letter")
	}

	return nil
}
