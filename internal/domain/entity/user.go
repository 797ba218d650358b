// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the authorization level of an account.
type Role string

const (
	// RoleUser is the default role for every registered account.
	RoleUser Role = "user"

	// RoleAdmin grants access to the administrative surface.
	RoleAdmin Role = "admin"
)

// FitnessLevel describes the self-declared training experience of a user.
type FitnessLevel string

const (
	FitnessLevelBeginner     FitnessLevel = "beginner"
	FitnessLevelIntermediate FitnessLevel = "intermediate"
	FitnessLevelAdvanced     FitnessLevel = "advanced"
)

// UnitSystem selects how weights and distances are rendered for the user.
type UnitSystem string

const (
	UnitSystemMetric   UnitSystem = "metric"
	UnitSystemImperial UnitSystem = "imperial"
)

// User is the core entity of the system, representing one account.
// The email is unique across the system (case-insensitive); PasswordHash is the
// bcrypt credential and must never leave the service boundary in a response.
type User struct {
	ID           uuid.UUID       // Global unique identifier for the account.
	Email        string          // Login identifier, stored lower-cased.
	PasswordHash string          // bcrypt hash of the credential. Never serialized.
	FirstName    string          // The user's given name.
	LastName     string          // The user's family name.
	BirthDate    *time.Time      // Optional date of birth.
	Gender       string          // Optional free-form gender.
	Preferences  UserPreferences // Training and privacy preferences.
	Role         Role            // Authorization level, defaults to RoleUser.
	IsActive     bool            // Inactive accounts cannot authenticate.
	IsSuspended  bool            // Suspended accounts keep access but lose admin capabilities.
	LastLoginAt  *time.Time      // Timestamp of the most recent successful login.
	CreatedAt    time.Time       // Timestamp of account creation.
	UpdatedAt    time.Time       // Timestamp of the last modification.
}

// UserPreferences holds per-account settings.
type UserPreferences struct {
	FitnessLevel   FitnessLevel // Self-declared experience level.
	UnitSystem     UnitSystem   // Preferred unit system for display.
	PrivateProfile bool         // When true the profile is hidden from other users.
}

// FullName returns the display name composed from first and last name.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// CanAdminister reports whether the account may use admin-only operations.
func (u *User) CanAdminister() bool {
	return u.Role == RoleAdmin && u.IsActive && !u.IsSuspended
}
