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

// workoutRepository implements the domain.WorkoutRepository interface on MongoDB.
type workoutRepository struct {
	collection *mongo.Collection
}

// NewWorkoutRepository is the constructor for workoutRepository.
func NewWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &workoutRepository{collection: db.Collection(workoutsCollection)}
}

// Create inserts a new workout document.
func (repo *workoutRepository) Create(ctx context.Context, workout *entity.Workout) error {
	workoutM := model.FromWorkoutDomain(workout)

	if _, err := repo.collection.InsertOne(ctx, workoutM); err != nil {
		return errors.Wrap(err, "failed to insert workout")
	}

	return nil
}

// FindByID retrieves a single workout by its unique ID.
func (repo *workoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	var workoutM model.WorkoutModel
	err := repo.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&workoutM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrWorkoutNotFound
		}

		return nil, errors.Wrap(err, "failed to find workout by id")
	}

	return model.ToWorkoutDomain(&workoutM)
}

// FindByOwner returns one page of the owner's workouts, newest first, with the total count.
func (repo *workoutRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, opts repository.ListWorkoutsOptions) ([]*entity.Workout, int64, error) {
	filter := bson.D{{Key: "ownerId", Value: ownerID.String()}}

	total, err := repo.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count workouts")
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64(opts.Offset)).
		SetLimit(int64(opts.Limit))

	cursor, err := repo.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list workouts")
	}
	defer cursor.Close(ctx)

	workouts := make([]*entity.Workout, 0)
	for cursor.Next(ctx) {
		var workoutM model.WorkoutModel
		if err := cursor.Decode(&workoutM); err != nil {
			return nil, 0, errors.Wrap(err, "failed to decode workout")
		}

		workout, err := model.ToWorkoutDomain(&workoutM)
		if err != nil {
			return nil, 0, err
		}
		workouts = append(workouts, workout)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "workout cursor failed")
	}

	return workouts, total, nil
}

// Update replaces the stored workout document.
func (repo *workoutRepository) Update(ctx context.Context, workout *entity.Workout) error {
	workout.UpdatedAt = time.Now()
	workoutM := model.FromWorkoutDomain(workout)

	result, err := repo.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: workoutM.ID}}, workoutM)
	if err != nil {
		return errors.Wrap(err, "failed to update workout")
	}
	if result.MatchedCount == 0 {
		return repository.ErrWorkoutNotFound
	}

	return nil
}

// Delete removes one workout document.
func (repo *workoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to delete workout")
	}
	if result.DeletedCount == 0 {
		return repository.ErrWorkoutNotFound
	}

	return nil
}

// DeleteByOwner removes every workout owned by the account.
func (repo *workoutRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	result, err := repo.collection.DeleteMany(ctx, bson.D{{Key: "ownerId", Value: ownerID.String()}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete workouts by owner")
	}

	return result.DeletedCount, nil
}

// CountByOwnerSince counts the owner's workouts dated at or after the given instant.
func (repo *workoutRepository) CountByOwnerSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int64, error) {
	filter := bson.D{
		{Key: "ownerId", Value: ownerID.String()},
		{Key: "date", Value: bson.D{{Key: "$gte", Value: since}}},
	}

	count, err := repo.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count recent workouts")
	}

	return count, nil
}

// SummarizeByOwner runs the statistics projection as an aggregation pipeline:
// only the date, duration, stored volume, and per-exercise name/set-count are
// pulled back, not the full set payloads.
func (repo *workoutRepository) SummarizeByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.WorkoutSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "ownerId", Value: ownerID.String()}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "date", Value: 1},
			{Key: "durationMinutes", Value: 1},
			{Key: "totalVolume", Value: 1},
			{Key: "exercises", Value: bson.D{{Key: "$map", Value: bson.D{
				{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$exercises", bson.A{}}}}},
				{Key: "as", Value: "exercise"},
				{Key: "in", Value: bson.D{
					{Key: "name", Value: "$$exercise.name"},
					{Key: "setCount", Value: bson.D{{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$$exercise.sets", bson.A{}}}}}}},
				}},
			}}}},
		}}},
	}

	cursor, err := repo.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate workout summaries")
	}
	defer cursor.Close(ctx)

	summaries := make([]entity.WorkoutSummary, 0)
	for cursor.Next(ctx) {
		var summaryM model.WorkoutSummaryModel
		if err := cursor.Decode(&summaryM); err != nil {
			return nil, errors.Wrap(err, "failed to decode workout summary")
		}
		summaries = append(summaries, model.ToWorkoutSummaryDomain(&summaryM))
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "workout summary cursor failed")
	}

	return summaries, nil
}
