package usecase

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// MeasurementInput defines the data for creating or fully updating a
// body-measurement record.
type MeasurementInput struct {
	Date           time.Time
	WeightKg       *float64
	BodyFatPercent *float64
	MuscleMassKg   *float64
	WaistCm        *float64
	ChestCm        *float64
	Notes          string
}

// ListMeasurementsInput controls pagination of a user's measurement listing.
type ListMeasurementsInput struct {
	Page    int
	PerPage int
}

// ListMeasurementsOutput is one page of a user's measurement listing.
type ListMeasurementsOutput struct {
	Measurements []*entity.Measurement
	Total        int64
	Page         int
	PerPage      int
}

// MeasurementUsecase defines the interface for measurement CRUD operations,
// scoped to the authenticated owner.
type MeasurementUsecase interface {
	CreateMeasurement(ctx context.Context, ownerID uuid.UUID, input *MeasurementInput) (*entity.Measurement, error)
	GetMeasurement(ctx context.Context, ownerID, measurementID uuid.UUID) (*entity.Measurement, error)
	ListMeasurements(ctx context.Context, ownerID uuid.UUID, input *ListMeasurementsInput) (*ListMeasurementsOutput, error)
	UpdateMeasurement(ctx context.Context, ownerID, measurementID uuid.UUID, input *MeasurementInput) (*entity.Measurement, error)
	DeleteMeasurement(ctx context.Context, ownerID, measurementID uuid.UUID) error
}
