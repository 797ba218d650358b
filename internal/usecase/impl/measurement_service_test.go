package impl

import (
	"context"
	"testing"
	"time"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	mockRepo "fittrack/internal/mocks/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// measurementServiceFixtures holds all test dependencies for measurement service tests.
type measurementServiceFixtures struct {
	service         usecase.MeasurementUsecase
	measurementRepo *mockRepo.MockMeasurementRepository
}

func createTestMeasurementService(t *testing.T) measurementServiceFixtures {
	measurementRepo := mockRepo.NewMockMeasurementRepository(t)

	svc := NewMeasurementService(MeasurementServiceParams{
		MeasurementRepo: measurementRepo,
		Logger:          newDiscardLogger(),
	})

	return measurementServiceFixtures{
		service:         svc,
		measurementRepo: measurementRepo,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestMeasurementService_CreateMeasurement_Success(t *testing.T) {
	fx := createTestMeasurementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.MeasurementInput{
		Date:     time.Date(2026, 8, 20, 7, 30, 0, 0, time.UTC),
		WeightKg: floatPtr(82.5),
		WaistCm:  floatPtr(84),
		Notes:    "morning, fasted",
	}

	fx.measurementRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Measurement")).
		Return(nil)

	measurement, err := fx.service.CreateMeasurement(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, ownerID, measurement.OwnerID)
	require.NotNil(t, measurement.WeightKg)
	assert.InDelta(t, 82.5, *measurement.WeightKg, 1e-9)
	assert.Nil(t, measurement.BodyFatPercent)
}

func TestMeasurementService_UpdateMeasurement_ReplacesFields(t *testing.T) {
	fx := createTestMeasurementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	measurementID := uuid.New()
	existing := &entity.Measurement{
		ID:       measurementID,
		OwnerID:  ownerID,
		WeightKg: floatPtr(82.5),
		WaistCm:  floatPtr(84),
	}

	fx.measurementRepo.EXPECT().FindByID(ctx, measurementID).Return(existing, nil)
	fx.measurementRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Measurement")).
		Return(nil)

	updated, err := fx.service.UpdateMeasurement(ctx, ownerID, measurementID, &usecase.MeasurementInput{
		Date:     time.Now(),
		WeightKg: floatPtr(81.9),
	})

	require.NoError(t, err)
	require.NotNil(t, updated.WeightKg)
	assert.InDelta(t, 81.9, *updated.WeightKg, 1e-9)
	// A full update clears metrics the client no longer submits.
	assert.Nil(t, updated.WaistCm)
}

func TestMeasurementService_GetMeasurement_OtherOwnerReportsNotFound(t *testing.T) {
	fx := createTestMeasurementService(t)

	ctx := context.Background()
	measurementID := uuid.New()
	someoneElse := &entity.Measurement{ID: measurementID, OwnerID: uuid.New()}

	fx.measurementRepo.EXPECT().FindByID(ctx, measurementID).Return(someoneElse, nil)

	_, err := fx.service.GetMeasurement(ctx, uuid.New(), measurementID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestMeasurementService_DeleteMeasurement_Missing(t *testing.T) {
	fx := createTestMeasurementService(t)

	ctx := context.Background()
	measurementID := uuid.New()

	fx.measurementRepo.EXPECT().
		FindByID(ctx, measurementID).
		Return(nil, repository.ErrMeasurementNotFound)

	err := fx.service.DeleteMeasurement(ctx, uuid.New(), measurementID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
