// Package mongodb contains the concrete implementation of the persistence
// layer using the official MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"fittrack/config"
	"fittrack/internal/domain/lifecycle"
)

const (
	usersCollection        = "users"
	workoutsCollection     = "workouts"
	measurementsCollection = "measurements"

	defaultConnectTimeout = 10 * time.Second
)

// Params holds dependencies for the Mongo connection, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB, verifies the connection, ensures the indexes the
// repositories rely on, and registers a disconnect hook with Fx.
func New(params Params) (*mongo.Database, error) {
	timeout := params.Config.Mongo.Timeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	db := client.Database(params.Config.Mongo.Database)

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Disconnecting from MongoDB")

			return errors.Wrap(client.Disconnect(shutdownCtx), "failed to disconnect from mongodb")
		},
	})

	params.Logger.Info("Connected to MongoDB", slog.String("database", params.Config.Mongo.Database))

	return db, nil
}

// ensureIndexes creates the indexes the repositories depend on. The unique
// email index is what enforces the account-uniqueness invariant; the owner+date
// indexes back the per-user listings and the stats aggregation.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create users email index")
	}

	ownedByDate := mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "date", Value: -1}},
	}

	if _, err := db.Collection(workoutsCollection).Indexes().CreateOne(ctx, ownedByDate); err != nil {
		return errors.Wrap(err, "failed to create workouts owner index")
	}

	if _, err := db.Collection(measurementsCollection).Indexes().CreateOne(ctx, ownedByDate); err != nil {
		return errors.Wrap(err, "failed to create measurements owner index")
	}

	return nil
}
