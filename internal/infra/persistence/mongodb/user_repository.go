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

// userRepository implements the domain.UserRepository interface on MongoDB.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{collection: db.Collection(usersCollection)}
}

// Create inserts a new user document. A duplicate key on the unique email
// index maps to the repository sentinel so the use case can answer USER_EXISTS.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	if _, err := repo.collection.InsertOne(ctx, userM); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to insert user")
	}

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return model.ToUserDomain(&userM)
}

// FindByEmail retrieves a single user by their lower-cased email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.collection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return model.ToUserDomain(&userM)
}

// Update replaces the stored user document.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	userM := model.FromUserDomain(user)

	result, err := repo.collection.ReplaceOne(ctx, bson.D{{Key: "_id", Value: userM.ID}}, userM)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to update user")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin records the timestamp of a successful login.
func (repo *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "lastLoginAt", Value: at},
		{Key: "updatedAt", Value: at},
	}}}

	result, err := repo.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, update)
	if err != nil {
		return errors.Wrap(err, "failed to update last login")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces the stored credential hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "passwordHash", Value: passwordHash},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	result, err := repo.collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, update)
	if err != nil {
		return errors.Wrap(err, "failed to update password")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the user document.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	if result.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns one page of users, newest first, with the total count.
func (repo *userRepository) List(ctx context.Context, opts repository.ListUsersOptions) ([]*entity.User, int64, error) {
	total, err := repo.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(opts.Offset)).
		SetLimit(int64(opts.Limit))

	cursor, err := repo.collection.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}
	defer cursor.Close(ctx)

	users := make([]*entity.User, 0)
	for cursor.Next(ctx) {
		var userM model.UserModel
		if err := cursor.Decode(&userM); err != nil {
			return nil, 0, errors.Wrap(err, "failed to decode user")
		}

		user, err := model.ToUserDomain(&userM)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "user cursor failed")
	}

	return users, total, nil
}
