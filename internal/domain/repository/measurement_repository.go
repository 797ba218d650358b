package repository

import (
	"context"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"

	"fittrack/internal/errors"
)

// ErrMeasurementNotFound is returned when no measurement matches the lookup.
var ErrMeasurementNotFound = errors.New("measurement not found")

// ListMeasurementsOptions controls pagination of a user's measurement listing.
// Results are ordered by date descending.
type ListMeasurementsOptions struct {
	Offset int
	Limit  int
}

// MeasurementRepository abstracts persistence of body-measurement records.
type MeasurementRepository interface {
	// Create persists a new measurement record.
	Create(ctx context.Context, measurement *entity.Measurement) error

	// FindByID retrieves a measurement by ID. Returns ErrMeasurementNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Measurement, error)

	// FindByOwner returns a page of the owner's measurements with the total count.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, opts ListMeasurementsOptions) ([]*entity.Measurement, int64, error)

	// Update persists changes to an existing measurement.
	Update(ctx context.Context, measurement *entity.Measurement) error

	// Delete removes one measurement. Returns ErrMeasurementNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByOwner removes all of the owner's measurements and returns the count removed.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
