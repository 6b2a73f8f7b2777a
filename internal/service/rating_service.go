package service

import (
	"context"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingStore interface {
	Upsert(ctx context.Context, userID primitive.ObjectID, movieID int, movieTitle string, rating float64) (bool, error)
	GetOne(ctx context.Context, userID primitive.ObjectID, movieID int) (*models.RatingDoc, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.RatingDoc, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID, limit, offset int) ([]models.RatingDoc, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type MovieGetter interface {
	GetByID(ctx context.Context, movieID int) (*models.MovieDoc, error)
}

type RatingService struct {
	ratings RatingStore
	movies  MovieGetter
}

func NewRatingService(ratings RatingStore, movies MovieGetter) *RatingService {
	return &RatingService{ratings: ratings, movies: movies}
}

// SubmitResult reports whether the submission created a new rating or
// replaced the value of an existing one.
type SubmitResult struct {
	Rating  *models.RatingDoc `json:"rating"`
	Created bool              `json:"created"`
}

// Submit records the user's rating for a movie: insert on first
// submission, in-place update on resubmission. Both paths are the same
// atomic upsert keyed by (userId, movieId), so at most one document per
// pair exists even under concurrent submissions.
func (s *RatingService) Submit(ctx context.Context, userID primitive.ObjectID, movieID int, rating float64) (*SubmitResult, error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	created, err := s.ratings.Upsert(ctx, userID, movieID, movie.Title, rating)
	if err != nil {
		return nil, err
	}

	doc, err := s.ratings.GetOne(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Rating: doc, Created: created}, nil
}

// Delete removes a rating by its id. The requesting user must own the
// rating unless isAdmin is set. An unknown or malformed id is
// ErrRatingNotFound either way, and the collection is left untouched.
func (s *RatingService) Delete(ctx context.Context, ratingID string, userID primitive.ObjectID, isAdmin bool) error {
	oid, err := primitive.ObjectIDFromHex(ratingID)
	if err != nil {
		return ErrRatingNotFound
	}

	doc, err := s.ratings.GetByID(ctx, oid)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrRatingNotFound
	}
	if !isAdmin && doc.UserID != userID {
		return ErrRatingNotFound
	}

	deleted, err := s.ratings.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRatingNotFound
	}
	return nil
}

func (s *RatingService) GetByUser(ctx context.Context, userID primitive.ObjectID, limit, offset int) ([]models.RatingDoc, error) {
	return s.ratings.GetByUser(ctx, userID, limit, offset)
}
