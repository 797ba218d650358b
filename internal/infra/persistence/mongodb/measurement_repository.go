package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fittrack/internal/domain/entity"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"
)

// measurementRepository implements the domain.MeasurementRepository interface on MongoDB.
type measurementRepository struct {
	collection *mongo.Collection
}

// NewMeasurementRepository is the constructor for measurementRepository.
func NewMeasurementRepository(db *mongo.Database) repository.MeasurementRepository {
	return &measurementRepository{collection: db.Collection(measurementsCollection)}
}

// Create inserts a new measurement document.
func (repo *measurementRepository) Create(ctx context.Context, measurement *entity.Measurement) error {
	measurementM := model.FromMeasurementDomain(measurement)

	if _, err := repo.collection.InsertOne(ctx, measurementM); err != nil {
		return errors.Wrap(err, "failed to insert measurement")
	}

	return nil
}

// FindByID retrieves a single measurement by its unique ID.
func (repo *measurementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Measurement, error) {
	var measurementM model.MeasurementModel
	err := repo.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&measurementM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMeasurementNotFound
		}

		return nil, errors.Wrap(err, "failed to find measurement by id")
	}

	return model.ToMeasurementDomain(&measurementM)
}

// FindByOwner returns one page of the owner's measurements, newest first, with the total count.
func (repo *measurementRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, opts repository.ListMeasurementsOptions) ([]*entity.Measurement, int64, error) {
	filter := bson.D{{Key: "ownerId", Value: ownerID.String()}}

	total, err := repo.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count measurements")
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64(opts.Offset)).
		SetLimit(int64(opts.Limit))

	cursor, err := repo.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list measurements")
	}
	defer cursor.Close(ctx)

	measurements := make([]*entity.Measurement, 0)
	for cursor.Next(ctx) {
		var measurementM model.MeasurementModel
		if err := cursor.Decode(&measurementM); err != nil {
			return nil, 0, errors.Wrap(err, "failed to decode measurement")
		}

		measurement, err := model.ToMeasurementDomain(&measurementM)
		if err != nil {
			return nil, 0, err
		}
		measurements = append(measurements, measurement)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "measurement cursor failed")
	}

	return measurements, total, nil
}

// Update replaces the stored measurement document.
func (repo *measurementRepository) Update(ctx context.Context, measurement *entity.Measurement) error {
	measurement.UpdatedAt = time.Now()
	measurementM := model.FromMeasurementDomain(measurement)

	result, err := repo.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: measurementM.ID}}, measurementM)
	if err != nil {
		return errors.Wrap(err, "failed to update measurement")
	}
	if result.MatchedCount == 0 {
		return repository.ErrMeasurementNotFound
	}

	return nil
}

// Delete removes one measurement document.
func (repo *measurementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to delete measurement")
	}
	if result.DeletedCount == 0 {
		return repository.ErrMeasurementNotFound
	}

	return nil
}

// DeleteByOwner removes every measurement owned by the account.
func (repo *measurementRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	result, err := repo.collection.DeleteMany(ctx, bson.D{{Key: "ownerId", Value: ownerID.String()}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete measurements by owner")
	}

	return result.DeletedCount, nil
}
