package entity

import (
	"time"

	"github.com/google/uuid"
)

// Measurement represents one body-measurement record owned by an account.
// All metric fields are optional; a record usually carries a subset.
type Measurement struct {
	ID             uuid.UUID // Global unique identifier for the measurement.
	OwnerID        uuid.UUID // The account that owns this record.
	Date           time.Time // When the measurement was taken.
	WeightKg       *float64  // Body weight in kilograms.
	BodyFatPercent *float64  // Body fat percentage.
	MuscleMassKg   *float64  // Muscle mass in kilograms.
	WaistCm        *float64  // Waist circumference in centimeters.
	ChestCm        *float64  // Chest circumference in centimeters.
	Notes          string    // Free-text notes.
	CreatedAt      time.Time // Timestamp of record creation.
	UpdatedAt      time.Time // Timestamp of the last modification.
}
