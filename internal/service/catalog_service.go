package service

import (
	"context"
	"strings"
	"time"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const SearchPageSize = 5

type MovieStore interface {
	GetByID(ctx context.Context, movieID int) (*models.MovieDoc, error)
	Insert(ctx context.Context, m *models.MovieDoc) error
	SearchByGenre(ctx context.Context, genre string, limit, offset int) ([]models.MovieDoc, int64, error)
}

type RatingWriter interface {
	Upsert(ctx context.Context, userID primitive.ObjectID, movieID int, movieTitle string, rating float64) (bool, error)
	GetOne(ctx context.Context, userID primitive.ObjectID, movieID int) (*models.RatingDoc, error)
}

type Sequencer interface {
	Next(ctx context.Context, name string) (int, error)
}

type CatalogService struct {
	movies   MovieStore
	ratings  RatingWriter
	counters Sequencer
}

func NewCatalogService(movies MovieStore, ratings RatingWriter, counters Sequencer) *CatalogService {
	return &CatalogService{movies: movies, ratings: ratings, counters: counters}
}

// SearchResult is one page of a genre search plus enough to paginate:
// HasMore is computed from the total count, not from whether the page
// happened to come back full.
type SearchResult struct {
	Movies   []models.MovieDoc `json:"movies"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Total    int64             `json:"total"`
	HasMore  bool              `json:"hasMore"`
}

// AddMovie inserts a new movie under the next sequence id and records the
// acting user's first rating of it in the same call path. The two inserts
// are not transactional; a failure between them leaves the movie without
// its initial rating, which the caller sees as an error.
func (s *CatalogService) AddMovie(ctx context.Context, userID primitive.ObjectID, title, genresCsv string, rating float64) (*models.MovieDoc, *models.RatingDoc, error) {
	movieID, err := s.counters.Next(ctx, "movieId")
	if err != nil {
		return nil, nil, err
	}

	m := &models.MovieDoc{
		MovieID:   movieID,
		Title:     title,
		Genres:    splitGenres(genresCsv),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.movies.Insert(ctx, m); err != nil {
		return nil, nil, err
	}

	if _, err := s.ratings.Upsert(ctx, userID, movieID, title, rating); err != nil {
		return nil, nil, err
	}
	r, err := s.ratings.GetOne(ctx, userID, movieID)
	if err != nil {
		return nil, nil, err
	}
	return m, r, nil
}

// Search returns one page of movies matching the genre. An empty genre
// yields an empty result without touching the store.
func (s *CatalogService) Search(ctx context.Context, genre string, page int) (*SearchResult, error) {
	if page < 0 {
		page = 0
	}
	res := &SearchResult{Page: page, PageSize: SearchPageSize}
	if strings.TrimSpace(genre) == "" {
		return res, nil
	}

	movies, total, err := s.movies.SearchByGenre(ctx, genre, SearchPageSize, page*SearchPageSize)
	if err != nil {
		return nil, err
	}
	res.Movies = movies
	res.Total = total
	res.HasMore = int64((page+1)*SearchPageSize) < total
	return res, nil
}

func (s *CatalogService) GetMovie(ctx context.Context, movieID int) (*models.MovieDoc, error) {
	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMovieNotFound
	}
	return m, nil
}

func splitGenres(csv string) []string {
	var out []string
	for _, g := range strings.Split(csv, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
