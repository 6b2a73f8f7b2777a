package service

import (
	"context"
	"fmt"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/cache"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"

	"go.uber.org/zap"
)

const (
	DefaultTopLimit = 10

	// short TTL: the ranking only has to be fresh-ish, and the aggregation
	// runs over the whole ratings collection
	topCacheTTLSeconds = 60
)

type TopRatedStore interface {
	TopRated(ctx context.Context, limit int) ([]models.TopMovie, error)
}

type AnalyticsService struct {
	ratings TopRatedStore
	log     *zap.Logger
}

func NewAnalyticsService(ratings TopRatedStore, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{ratings: ratings, log: logger}
}

// TopRated returns up to limit movies ordered by average rating,
// highest first. Movies whose title cannot be resolved are skipped by the
// pipeline, so the list can be shorter than limit. Results are cached in
// Redis for a short window; without intervening writes two calls return
// identical output, cached or not.
func (s *AnalyticsService) TopRated(ctx context.Context, limit int) ([]models.TopMovie, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	key := fmt.Sprintf("analytics:top:%d", limit)

	var cached []models.TopMovie
	hit, err := cache.GetJSON(ctx, key, &cached)
	if err != nil {
		// cache trouble is not an operation failure, fall through to Mongo
		s.log.Warn("top-rated cache read failed", zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	rows, err := s.ratings.TopRated(ctx, limit)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, key, rows, topCacheTTLSeconds); err != nil {
		s.log.Warn("top-rated cache write failed", zap.Error(err))
	}
	return rows, nil
}
