// Package model contains the persistence representations of the domain
// entities, with bson tags for the document store. Mapping helpers keep the
// domain entities free of storage concerns.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fittrack/internal/domain/entity"
)

// UserModel is the document stored in the users collection.
// Entity IDs are persisted as their canonical UUID string.
type UserModel struct {
	ID           string           `bson:"_id"`
	Email        string           `bson:"email"`
	PasswordHash string           `bson:"passwordHash"`
	FirstName    string           `bson:"firstName"`
	LastName     string           `bson:"lastName"`
	BirthDate    *time.Time       `bson:"birthDate,omitempty"`
	Gender       string           `bson:"gender,omitempty"`
	Preferences  PreferencesModel `bson:"preferences"`
	Role         string           `bson:"role"`
	IsActive     bool             `bson:"isActive"`
	IsSuspended  bool             `bson:"isSuspended"`
	LastLoginAt  *time.Time       `bson:"lastLoginAt,omitempty"`
	CreatedAt    time.Time        `bson:"createdAt"`
	UpdatedAt    time.Time        `bson:"updatedAt"`
}

// PreferencesModel is the embedded preferences sub-document.
type PreferencesModel struct {
	FitnessLevel   string `bson:"fitnessLevel,omitempty"`
	UnitSystem     string `bson:"unitSystem,omitempty"`
	PrivateProfile bool   `bson:"privateProfile"`
}

// FromUserDomain maps a domain entity to its persistence document.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID.String(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		BirthDate:    user.BirthDate,
		Gender:       user.Gender,
		Preferences: PreferencesModel{
			FitnessLevel:   string(user.Preferences.FitnessLevel),
			UnitSystem:     string(user.Preferences.UnitSystem),
			PrivateProfile: user.Preferences.PrivateProfile,
		},
		Role:        string(user.Role),
		IsActive:    user.IsActive,
		IsSuspended: user.IsSuspended,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ToUserDomain maps a persistence document back to the domain entity.
func ToUserDomain(m *UserModel) (*entity.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt user id %q", m.ID)
	}

	return &entity.User{
		ID:           id,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		BirthDate:    m.BirthDate,
		Gender:       m.Gender,
		Preferences: entity.UserPreferences{
			FitnessLevel:   entity.FitnessLevel(m.Preferences.FitnessLevel),
			UnitSystem:     entity.UnitSystem(m.Preferences.UnitSystem),
			PrivateProfile: m.Preferences.PrivateProfile,
		},
		Role:        entity.Role(m.Role),
		IsActive:    m.IsActive,
		IsSuspended: m.IsSuspended,
		LastLoginAt: m.LastLoginAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}
