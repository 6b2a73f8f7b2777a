package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/chart"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/service"

	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
	log *zap.Logger
}

func NewAnalyticsHandler(s *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: s, log: logger}
}

// @Summary Top rated movies
// @Description Average rating per movie, sorted descending, top N with titles joined
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Param limit query int false "limit (default: 10)"
// @Success 200 {array} models.TopMovie
// @Router /analytics/top [get]
func (h *AnalyticsHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rows, err := h.svc.TopRated(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rows)
}

// @Summary Top rated movies chart
// @Description Same ranking rendered as a horizontal bar chart, highest average on top
// @Tags analytics
// @Security BearerAuth
// @Produce html
// @Param limit query int false "limit (default: 10)"
// @Success 200 {string} string "HTML page"
// @Router /analytics/top/chart [get]
func (h *AnalyticsHandler) TopRatedChart(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rows, err := h.svc.TopRated(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.RenderTopRated(w, rows); err != nil {
		h.log.Error("chart render failed", zap.Error(err))
	}
}
