package db

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes is called once at startup. Index creation is idempotent,
// so rerunning against an already-provisioned database is a no-op.
// The unique indexes are what make sign-up and rating upserts safe under
// concurrent sessions; the application never does a check-then-insert.
func EnsureIndexes(ctx context.Context, database *mongo.Database, logger *zap.Logger) error {
	var problems []string

	userIdx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
	}
	if _, err := database.Collection("users").Indexes().CreateMany(ctx, userIdx); err != nil {
		problems = append(problems, "users: "+err.Error())
	}

	movieIdx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "movieId", Value: 1}},
			Options: options.Index().SetName("by_movie_id"),
		},
		{
			Keys:    bson.D{{Key: "genres", Value: 1}},
			Options: options.Index().SetName("by_genre"),
		},
	}
	if _, err := database.Collection("movies").Indexes().CreateMany(ctx, movieIdx); err != nil {
		problems = append(problems, "movies: "+err.Error())
	}

	ratingIdx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "movieId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user_movie"),
		},
		{
			Keys:    bson.D{{Key: "movieId", Value: 1}},
			Options: options.Index().SetName("by_movie"),
		},
	}
	if _, err := database.Collection("ratings").Indexes().CreateMany(ctx, ratingIdx); err != nil {
		problems = append(problems, "ratings: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}

	logger.Info("mongo indexes ensured",
		zap.Strings("collections", []string{"users", "movies", "ratings"}))
	return nil
}
