package repository

import (
	"context"
	"time"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/db"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{col: db.DB().Collection("ratings")}
}

// Upsert writes the rating for (userId, movieId) in one atomic call: at
// most one document per pair, whether or not one existed before. The
// returned flag reports whether a new document was created.
func (r *RatingRepository) Upsert(ctx context.Context, userID primitive.ObjectID, movieID int, movieTitle string, rating float64) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	res, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "movieId": movieID},
		bson.M{
			"$set": bson.M{
				"rating":    rating,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{
				"movieTitle": movieTitle,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *RatingRepository) GetOne(ctx context.Context, userID primitive.ObjectID, movieID int) (*models.RatingDoc, error) {
	var doc models.RatingDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "movieId": movieID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &doc, err
}

func (r *RatingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RatingDoc, error) {
	var doc models.RatingDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &doc, err
}

func (r *RatingRepository) GetByUser(ctx context.Context, userID primitive.ObjectID, limit, offset int) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetLimit(int64(limit)).SetSkip(int64(offset)),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RatingDoc
	for cur.Next(ctx) {
		var doc models.RatingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}

// DeleteByID removes one rating. The flag reports whether anything was
// actually deleted.
func (r *RatingRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// TopRated groups all ratings by movie, averages them, sorts descending
// and joins the movie title. Ratings whose movie cannot be resolved are
// dropped by the $unwind, so the result can be shorter than limit. Ties
// keep the store's own sort order.
func (r *RatingRepository) TopRated(ctx context.Context, limit int) ([]models.TopMovie, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$movieId"},
			{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "avgRating", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "movies"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "movieId"},
			{Key: "as", Value: "movie"},
		}}},
		bson.D{{Key: "$unwind", Value: "$movie"}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "movieId", Value: "$_id"},
			{Key: "title", Value: "$movie.title"},
			{Key: "avgRating", Value: 1},
			{Key: "count", Value: 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.TopMovie
	for cur.Next(ctx) {
		var row models.TopMovie
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, cur.Err()
}
