package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the repositories, shared by the handler tests.

type memMovies struct {
	movies []models.MovieDoc
}

func (f *memMovies) GetByID(_ context.Context, movieID int) (*models.MovieDoc, error) {
	for i := range f.movies {
		if f.movies[i].MovieID == movieID {
			return &f.movies[i], nil
		}
	}
	return nil, nil
}

func (f *memMovies) Insert(_ context.Context, m *models.MovieDoc) error {
	f.movies = append(f.movies, *m)
	return nil
}

func (f *memMovies) SearchByGenre(_ context.Context, genre string, limit, offset int) ([]models.MovieDoc, int64, error) {
	var matched []models.MovieDoc
	for _, m := range f.movies {
		for _, g := range m.Genres {
			if strings.Contains(strings.ToLower(g), strings.ToLower(genre)) {
				matched = append(matched, m)
				break
			}
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type memRatings struct {
	ratings map[string]*models.RatingDoc
}

func newMemRatings() *memRatings {
	return &memRatings{ratings: map[string]*models.RatingDoc{}}
}

func memKey(userID primitive.ObjectID, movieID int) string {
	return fmt.Sprintf("%s/%d", userID.Hex(), movieID)
}

func (f *memRatings) Upsert(_ context.Context, userID primitive.ObjectID, movieID int, movieTitle string, rating float64) (bool, error) {
	key := memKey(userID, movieID)
	if doc, ok := f.ratings[key]; ok {
		doc.Rating = rating
		doc.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		return false, nil
	}
	f.ratings[key] = &models.RatingDoc{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		MovieID:    movieID,
		MovieTitle: movieTitle,
		Rating:     rating,
	}
	return true, nil
}

func (f *memRatings) GetOne(_ context.Context, userID primitive.ObjectID, movieID int) (*models.RatingDoc, error) {
	return f.ratings[memKey(userID, movieID)], nil
}

func (f *memRatings) GetByID(_ context.Context, id primitive.ObjectID) (*models.RatingDoc, error) {
	for _, doc := range f.ratings {
		if doc.ID == id {
			return doc, nil
		}
	}
	return nil, nil
}

func (f *memRatings) GetByUser(_ context.Context, userID primitive.ObjectID, limit, offset int) ([]models.RatingDoc, error) {
	var out []models.RatingDoc
	for _, doc := range f.ratings {
		if doc.UserID == userID {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (f *memRatings) DeleteByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	for key, doc := range f.ratings {
		if doc.ID == id {
			delete(f.ratings, key)
			return true, nil
		}
	}
	return false, nil
}

type memSequencer struct{ n int }

func (f *memSequencer) Next(_ context.Context, _ string) (int, error) {
	f.n++
	return f.n, nil
}
