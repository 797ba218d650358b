package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// measurementService implements the MeasurementUsecase interface.
type measurementService struct {
	measurementRepo repository.MeasurementRepository
	logger          *slog.Logger
}

// MeasurementServiceParams holds dependencies for MeasurementService, injected by Fx.
type MeasurementServiceParams struct {
	fx.In

	MeasurementRepo repository.MeasurementRepository
	Logger          *slog.Logger
}

// NewMeasurementService is the constructor for measurementService.
func NewMeasurementService(params MeasurementServiceParams) usecase.MeasurementUsecase {
	return &measurementService{
		measurementRepo: params.MeasurementRepo,
		logger:          params.Logger,
	}
}

func (srv *measurementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMeasurement persists a new body-measurement record for the owner.
func (srv *measurementService) CreateMeasurement(ctx context.Context, ownerID uuid.UUID, input *usecase.MeasurementInput) (*entity.Measurement, error) {
	now := time.Now()
	measurement := &entity.Measurement{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Date:           input.Date,
		WeightKg:       input.WeightKg,
		BodyFatPercent: input.BodyFatPercent,
		MuscleMassKg:   input.MuscleMassKg,
		WaistCm:        input.WaistCm,
		ChestCm:        input.ChestCm,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.measurementRepo.Create(ctx, measurement); err != nil {
		return nil, errors.Wrap(err, "failed to create measurement")
	}

	srv.log(ctx).Debug("Measurement created", slog.Any("measurementID", measurement.ID), slog.Any("ownerID", ownerID))

	return measurement, nil
}

// GetMeasurement loads one measurement. A record owned by someone else is
// reported as absent, never as forbidden.
func (srv *measurementService) GetMeasurement(ctx context.Context, ownerID, measurementID uuid.UUID) (*entity.Measurement, error) {
	return srv.findOwned(ctx, ownerID, measurementID)
}

// ListMeasurements returns one page of the owner's measurements, newest first.
func (srv *measurementService) ListMeasurements(ctx context.Context, ownerID uuid.UUID, input *usecase.ListMeasurementsInput) (*usecase.ListMeasurementsOutput, error) {
	page, perPage := normalizePage(input.Page, input.PerPage)

	measurements, total, err := srv.measurementRepo.FindByOwner(ctx, ownerID, repository.ListMeasurementsOptions{
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list measurements")
	}

	return &usecase.ListMeasurementsOutput{
		Measurements: measurements,
		Total:        total,
		Page:         page,
		PerPage:      perPage,
	}, nil
}

// UpdateMeasurement replaces the mutable fields of an owned measurement.
func (srv *measurementService) UpdateMeasurement(ctx context.Context, ownerID, measurementID uuid.UUID, input *usecase.MeasurementInput) (*entity.Measurement, error) {
	measurement, err := srv.findOwned(ctx, ownerID, measurementID)
	if err != nil {
		return nil, err
	}

	measurement.Date = input.Date
	measurement.WeightKg = input.WeightKg
	measurement.BodyFatPercent = input.BodyFatPercent
	measurement.MuscleMassKg = input.MuscleMassKg
	measurement.WaistCm = input.WaistCm
	measurement.ChestCm = input.ChestCm
	measurement.Notes = input.Notes
	measurement.UpdatedAt = time.Now()

	if err := srv.measurementRepo.Update(ctx, measurement); err != nil {
		return nil, errors.Wrap(err, "failed to store measurement update")
	}

	return measurement, nil
}

// DeleteMeasurement removes one owned measurement.
func (srv *measurementService) DeleteMeasurement(ctx context.Context, ownerID, measurementID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, ownerID, measurementID); err != nil {
		return err
	}

	if err := srv.measurementRepo.Delete(ctx, measurementID); err != nil {
		if errors.Is(err, repository.ErrMeasurementNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "measurement deletion failed")
		}

		return errors.Wrap(err, "failed to delete measurement")
	}

	srv.log(ctx).Debug("Measurement deleted", slog.Any("measurementID", measurementID), slog.Any("ownerID", ownerID))

	return nil
}

// findOwned loads a measurement and enforces ownership.
func (srv *measurementService) findOwned(ctx context.Context, ownerID, measurementID uuid.UUID) (*entity.Measurement, error) {
	measurement, err := srv.measurementRepo.FindByID(ctx, measurementID)
	if err != nil {
		if errors.Is(err, repository.ErrMeasurementNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "measurement lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load measurement")
	}

	if measurement.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "measurement lookup failed")
	}

	return measurement, nil
}
