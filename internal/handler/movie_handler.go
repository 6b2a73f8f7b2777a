package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/service"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/session"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MovieHandler struct {
	svc      *service.CatalogService
	sessions *session.Manager
	log      *zap.Logger
}

func NewMovieHandler(s *service.CatalogService, sm *session.Manager, logger *zap.Logger) *MovieHandler {
	return &MovieHandler{svc: s, sessions: sm, log: logger}
}

type addMovieRequest struct {
	Title  string  `json:"title" validate:"required"`
	Genres string  `json:"genres" validate:"required"`
	Rating float64 `json:"rating" validate:"gte=0,lte=5,halfstep"`
}

// @Summary Add movie
// @Description Inserts a movie plus the acting user's first rating of it
// @Tags movies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body addMovieRequest true "title, comma-separated genres and your rating"
// @Success 201 {object} map[string]any
// @Router /movies [post]
func (h *MovieHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	u, _ := CurrentUser(r.Context())
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		http.Error(w, "invalid user id in session", http.StatusUnauthorized)
		return
	}

	var req addMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movie, rating, err := h.svc.AddMovie(r.Context(), userID, req.Title, req.Genres, req.Rating)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.log.Info("movie added",
		zap.Int("movieId", movie.MovieID),
		zap.String("title", movie.Title),
		zap.String("by", u.Username))

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"movie":  movie,
		"rating": rating,
	})
}

// @Summary Search movies by genre (paginated)
// @Description Case-insensitive substring match against the genres list, 5 per page. Without an explicit page the session's search page is used.
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Param genre query string true "genre substring"
// @Param page query int false "page index (0 based)"
// @Success 200 {object} service.SearchResult
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	genre := r.URL.Query().Get("genre")

	page := h.sessions.SearchPage(r)
	if p := r.URL.Query().Get("page"); p != "" {
		page, _ = strconv.Atoi(p)
		if page < 0 {
			page = 0
		}
		_ = h.sessions.SetSearchPage(w, r, page)
	}

	res, err := h.svc.Search(r.Context(), genre, page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// @Summary Next search page
// @Description Advances the session's search page, but only when more results exist
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Param genre query string true "genre substring"
// @Success 200 {object} service.SearchResult
// @Router /movies/search/next [post]
func (h *MovieHandler) SearchNext(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	genre := r.URL.Query().Get("genre")
	page := h.sessions.SearchPage(r)

	cur, err := h.svc.Search(r.Context(), genre, page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if cur.HasMore {
		page++
	}
	if err := h.sessions.SetSearchPage(w, r, page); err != nil {
		h.log.Warn("session save failed", zap.Error(err))
	}

	res, err := h.svc.Search(r.Context(), genre, page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// @Summary Previous search page
// @Description Moves the session's search page back, floored at 0
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Param genre query string true "genre substring"
// @Success 200 {object} service.SearchResult
// @Router /movies/search/prev [post]
func (h *MovieHandler) SearchPrev(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	genre := r.URL.Query().Get("genre")
	page := h.sessions.SearchPage(r) - 1
	if page < 0 {
		page = 0
	}
	if err := h.sessions.SetSearchPage(w, r, page); err != nil {
		h.log.Warn("session save failed", zap.Error(err))
	}

	res, err := h.svc.Search(r.Context(), genre, page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// @Summary Get movie
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.MovieDoc
// @Failure 404 {string} string "movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	m, err := h.svc.GetMovie(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(m)
}
