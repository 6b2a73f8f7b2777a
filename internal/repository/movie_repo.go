package repository

import (
	"context"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/db"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{col: db.DB().Collection("movies")}
}

func (r *MovieRepository) GetByID(ctx context.Context, movieID int) (*models.MovieDoc, error) {
	var m models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{"movieId": movieID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

func (r *MovieRepository) Insert(ctx context.Context, m *models.MovieDoc) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

// SearchByGenre does a case-insensitive substring match against each
// movie's genres array ("sci" matches "Sci-Fi"). The total count goes back
// with the page so callers can tell whether more pages exist.
func (r *MovieRepository) SearchByGenre(ctx context.Context, genre string, limit, offset int) ([]models.MovieDoc, int64, error) {
	filter := bson.M{"genres": bson.M{"$regex": genre, "$options": "i"}}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, cur.Err()
}
