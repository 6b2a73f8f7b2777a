package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/service"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/session"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newMovieHandler(t *testing.T) (*MovieHandler, *memMovies, *memRatings, *session.Manager) {
	t.Helper()
	movies := &memMovies{}
	ratings := newMemRatings()
	svc := service.NewCatalogService(movies, ratings, &memSequencer{})
	sm := session.NewManager("test-session-secret")
	return NewMovieHandler(svc, sm, zap.NewNop()), movies, ratings, sm
}

func authedUser() *session.User {
	return &session.User{ID: primitive.NewObjectID().Hex(), Username: "alice", Role: "user"}
}

func seedSciFi(movies *memMovies, n int) {
	for i := 1; i <= n; i++ {
		movies.movies = append(movies.movies, models.MovieDoc{
			MovieID: i, Title: "M", Genres: []string{"Sci-Fi"},
		})
	}
}

func TestAddMovie_CreatesMovieAndInitialRating(t *testing.T) {
	h, movies, ratings, _ := newMovieHandler(t)
	u := authedUser()

	req := withUser(postJSON("/movies",
		`{"title":"Inception","genres":"Sci-Fi, Thriller","rating":4.5}`), u)
	rec := httptest.NewRecorder()
	h.AddMovie(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Movie  models.MovieDoc  `json:"movie"`
		Rating models.RatingDoc `json:"rating"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Movie.MovieID != 1 || resp.Movie.Title != "Inception" {
		t.Errorf("movie: %+v", resp.Movie)
	}
	if resp.Rating.Rating != 4.5 || resp.Rating.MovieID != 1 {
		t.Errorf("rating: %+v", resp.Rating)
	}
	if len(movies.movies) != 1 || len(ratings.ratings) != 1 {
		t.Errorf("store state: %d movies, %d ratings", len(movies.movies), len(ratings.ratings))
	}
}

func TestAddMovie_RejectsOffStepRating(t *testing.T) {
	h, _, _, _ := newMovieHandler(t)

	req := withUser(postJSON("/movies",
		`{"title":"X","genres":"Drama","rating":4.3}`), authedUser())
	rec := httptest.NewRecorder()
	h.AddMovie(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestSearch_MatchesCaseInsensitiveSubstring(t *testing.T) {
	h, movies, _, _ := newMovieHandler(t)
	seedSciFi(movies, 3)

	req := withUser(httptest.NewRequest("GET", "/movies/search?genre=sci-fi", nil), authedUser())
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var res service.SearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(res.Movies) != 3 || res.Total != 3 || res.HasMore {
		t.Errorf("result: len=%d total=%d hasMore=%v", len(res.Movies), res.Total, res.HasMore)
	}
}

func TestSearch_ExplicitPageParam(t *testing.T) {
	h, movies, _, _ := newMovieHandler(t)
	seedSciFi(movies, 12)

	req := withUser(httptest.NewRequest("GET", "/movies/search?genre=sci&page=1", nil), authedUser())
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	var res service.SearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if res.Page != 1 || res.Movies[0].MovieID != 6 {
		t.Errorf("page 1: page=%d first=%d", res.Page, res.Movies[0].MovieID)
	}
}

// Walks next/next/prev through the session the way the paging buttons do.
func TestSearchNextPrev_SessionPaging(t *testing.T) {
	h, movies, _, _ := newMovieHandler(t)
	seedSciFi(movies, 12)
	u := authedUser()

	// next: 0 -> 1
	req := withUser(httptest.NewRequest("POST", "/movies/search/next?genre=sci", nil), u)
	rec := httptest.NewRecorder()
	h.SearchNext(rec, req)

	var res service.SearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if res.Page != 1 {
		t.Fatalf("after next: page=%d, want 1", res.Page)
	}

	// next again with the session cookie: 1 -> 2 (last page, 2 movies)
	req = withUser(httptest.NewRequest("POST", "/movies/search/next?genre=sci", nil), u)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	h.SearchNext(rec2, req)
	if err := json.Unmarshal(rec2.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if res.Page != 2 || len(res.Movies) != 2 || res.HasMore {
		t.Fatalf("after second next: page=%d len=%d hasMore=%v", res.Page, len(res.Movies), res.HasMore)
	}

	// next on the last page must not advance
	req = withUser(httptest.NewRequest("POST", "/movies/search/next?genre=sci", nil), u)
	for _, c := range rec2.Result().Cookies() {
		req.AddCookie(c)
	}
	rec3 := httptest.NewRecorder()
	h.SearchNext(rec3, req)
	if err := json.Unmarshal(rec3.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if res.Page != 2 {
		t.Fatalf("next past the end moved to page %d", res.Page)
	}

	// prev: 2 -> 1
	req = withUser(httptest.NewRequest("POST", "/movies/search/prev?genre=sci", nil), u)
	for _, c := range rec3.Result().Cookies() {
		req.AddCookie(c)
	}
	rec4 := httptest.NewRecorder()
	h.SearchPrev(rec4, req)
	if err := json.Unmarshal(rec4.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if res.Page != 1 {
		t.Fatalf("after prev: page=%d, want 1", res.Page)
	}
}

func TestSearchPrev_FloorsAtZero(t *testing.T) {
	h, movies, _, _ := newMovieHandler(t)
	seedSciFi(movies, 3)

	req := withUser(httptest.NewRequest("POST", "/movies/search/prev?genre=sci", nil), authedUser())
	rec := httptest.NewRecorder()
	h.SearchPrev(rec, req)

	var res service.SearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if res.Page != 0 {
		t.Errorf("page: got %d, want 0", res.Page)
	}
}
