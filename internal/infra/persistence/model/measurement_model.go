package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fittrack/internal/domain/entity"
)

// MeasurementModel is the document stored in the measurements collection.
type MeasurementModel struct {
	ID             string    `bson:"_id"`
	OwnerID        string    `bson:"ownerId"`
	Date           time.Time `bson:"date"`
	WeightKg       *float64  `bson:"weightKg,omitempty"`
	BodyFatPercent *float64  `bson:"bodyFatPercent,omitempty"`
	MuscleMassKg   *float64  `bson:"muscleMassKg,omitempty"`
	WaistCm        *float64  `bson:"waistCm,omitempty"`
	ChestCm        *float64  `bson:"chestCm,omitempty"`
	Notes          string    `bson:"notes,omitempty"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

// FromMeasurementDomain maps a domain entity to its persistence document.
func FromMeasurementDomain(measurement *entity.Measurement) *MeasurementModel {
	return &MeasurementModel{
		ID:             measurement.ID.String(),
		OwnerID:        measurement.OwnerID.String(),
		Date:           measurement.Date,
		WeightKg:       measurement.WeightKg,
		BodyFatPercent: measurement.BodyFatPercent,
		MuscleMassKg:   measurement.MuscleMassKg,
		WaistCm:        measurement.WaistCm,
		ChestCm:        measurement.ChestCm,
		Notes:          measurement.Notes,
		CreatedAt:      measurement.CreatedAt,
		UpdatedAt:      measurement.UpdatedAt,
	}
}

// ToMeasurementDomain maps a persistence document back to the domain entity.
func ToMeasurementDomain(m *MeasurementModel) (*entity.Measurement, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt measurement id %q", m.ID)
	}
	ownerID, err := uuid.Parse(m.OwnerID)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt measurement owner id %q", m.OwnerID)
	}

	return &entity.Measurement{
		ID:             id,
		OwnerID:        ownerID,
		Date:           m.Date,
		WeightKg:       m.WeightKg,
		BodyFatPercent: m.BodyFatPercent,
		MuscleMassKg:   m.MuscleMassKg,
		WaistCm:        m.WaistCm,
		ChestCm:        m.ChestCm,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}
