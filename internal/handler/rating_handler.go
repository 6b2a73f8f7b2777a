package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type RatingHandler struct {
	svc *service.RatingService
	log *zap.Logger
}

func NewRatingHandler(s *service.RatingService, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{svc: s, log: logger}
}

type submitRatingRequest struct {
	MovieID int     `json:"movieId" validate:"required,gt=0"`
	Rating  float64 `json:"rating" validate:"gte=0,lte=5,halfstep"`
}

// @Summary Submit rating
// @Description Creates the caller's rating for a movie, or updates it in place on resubmission
// @Tags ratings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body submitRatingRequest true "movieId and rating (0-5 in 0.5 steps)"
// @Success 200 {object} service.SubmitResult
// @Success 201 {object} service.SubmitResult
// @Failure 404 {string} string "movie not found"
// @Router /me/ratings [post]
func (h *RatingHandler) SubmitMyRating(w http.ResponseWriter, r *http.Request) {
	u, _ := CurrentUser(r.Context())
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		http.Error(w, "invalid user id in session", http.StatusUnauthorized)
		return
	}
	h.submit(w, r, userID)
}

// @Summary Submit rating for any user (ADMIN)
// @Description Rate-on-behalf path, admin only
// @Tags ratings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "user id (hex)"
// @Param body body submitRatingRequest true "movieId and rating"
// @Success 200 {object} service.SubmitResult
// @Router /users/{id}/ratings [post]
func (h *RatingHandler) SubmitRatingFor(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	h.submit(w, r, userID)
}

func (h *RatingHandler) submit(w http.ResponseWriter, r *http.Request, userID primitive.ObjectID) {
	w.Header().Set("Content-Type", "application/json")

	var req submitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.Submit(r.Context(), userID, req.MovieID, req.Rating)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}

// @Summary List own ratings
// @Tags ratings
// @Security BearerAuth
// @Produce json
// @Param limit query int false "limit (default: 100)"
// @Param offset query int false "offset"
// @Success 200 {array} models.RatingDoc
// @Router /me/ratings [get]
func (h *RatingHandler) GetMyRatings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	u, _ := CurrentUser(r.Context())
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		http.Error(w, "invalid user id in session", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 100
	}

	list, err := h.svc.GetByUser(r.Context(), userID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Delete rating
// @Description Removes one rating by its id; only the owner (or an admin) may delete it
// @Tags ratings
// @Security BearerAuth
// @Param id path string true "rating id (hex)"
// @Success 204
// @Failure 404 {string} string "rating not found"
// @Router /ratings/{id} [delete]
func (h *RatingHandler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	u, _ := CurrentUser(r.Context())
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		http.Error(w, "invalid user id in session", http.StatusUnauthorized)
		return
	}

	ratingID := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), ratingID, userID, u.Role == "admin"); err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.log.Info("rating deleted", zap.String("ratingId", ratingID), zap.String("by", u.Username))
	w.WriteHeader(http.StatusNoContent)
}
