package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/smuddana-7/Movie-Recommendation-System/docs" // swagger docs

	"github.com/smuddana-7/Movie-Recommendation-System/internal/cache"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/config"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/db"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/handler"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/repository"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/service"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Movie Recommendation API
// @version 1.0
// @description Sign up, rate movies, search the catalog by genre and see the top rated ones.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer logger.Sync()

	// Mongo and Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(ctx, db.DB(), logger); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	ratingRepo := repository.NewRatingRepository()
	counterRepo := repository.NewCounterRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	catalogSvc := service.NewCatalogService(movieRepo, ratingRepo, counterRepo)
	ratingSvc := service.NewRatingService(ratingRepo, movieRepo)
	analyticsSvc := service.NewAnalyticsService(ratingRepo, logger)

	// session store + handlers
	sessions := session.NewManager(cfg.SessionSecret)

	authH := handler.NewAuthHandler(authSvc, sessions, logger)
	movieH := handler.NewMovieHandler(catalogSvc, sessions, logger)
	ratingH := handler.NewRatingHandler(ratingSvc, logger)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(handler.LoadUser(sessions, cfg.JWTSecret))

	// =============
	// Public routes
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/signup", authH.SignUp)
	r.Post("/auth/login", authH.Login)

	// ============================
	// Routes behind authentication
	// ============================
	r.Group(func(r chi.Router) {
		r.Use(handler.RequireAuth())

		r.Post("/auth/logout", authH.Logout)

		r.Route("/movies", func(r chi.Router) {
			r.Post("/", movieH.AddMovie)
			r.Get("/search", movieH.Search)
			r.Post("/search/next", movieH.SearchNext)
			r.Post("/search/prev", movieH.SearchPrev)
			r.Get("/{id}", movieH.GetMovie)
		})

		r.Route("/me", func(r chi.Router) {
			r.Get("/", authH.Me)
			r.Get("/ratings", ratingH.GetMyRatings)
			r.Post("/ratings", ratingH.SubmitMyRating)
		})

		r.Delete("/ratings/{id}", ratingH.DeleteRating)

		r.Get("/analytics/top", analyticsH.TopRated)
		r.Get("/analytics/top/chart", analyticsH.TopRatedChart)

		// ---- ADMIN only ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())
			r.Post("/users/{id}/ratings", ratingH.SubmitRatingFor)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	logger.Info("HTTP listening", zap.String("port", cfg.HTTPPort))
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
