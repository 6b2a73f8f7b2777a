package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-jwt-secret"

func signToken(t *testing.T, sub, username, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      sub,
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func withUser(r *http.Request, u *session.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxUserKey, u))
}

func echoUser(t *testing.T) (http.Handler, *session.User) {
	var captured session.User
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := CurrentUser(r.Context()); ok {
			captured = *u
		}
		w.WriteHeader(http.StatusOK)
	})
	return h, &captured
}

func TestLoadUser_FromBearerToken(t *testing.T) {
	sm := session.NewManager("test-session-secret")
	inner, captured := echoUser(t)
	h := LoadUser(sm, testSecret)(inner)

	sub := primitive.NewObjectID().Hex()
	req := httptest.NewRequest("GET", "/me/ratings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, sub, "alice", "user"))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if captured.ID != sub || captured.Username != "alice" {
		t.Errorf("captured user: %+v", captured)
	}
}

func TestLoadUser_FromSessionCookie(t *testing.T) {
	sm := session.NewManager("test-session-secret")
	u := &models.UserDoc{ID: primitive.NewObjectID(), Username: "bob", Role: "user"}

	loginReq := httptest.NewRequest("POST", "/auth/login", nil)
	loginRec := httptest.NewRecorder()
	if err := sm.SignIn(loginRec, loginReq, u); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	inner, captured := echoUser(t)
	h := LoadUser(sm, testSecret)(inner)

	req := httptest.NewRequest("GET", "/me/ratings", nil)
	for _, c := range loginRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if captured.ID != u.ID.Hex() || captured.Username != "bob" {
		t.Errorf("captured user: %+v", captured)
	}
}

func TestLoadUser_BadTokenStaysAnonymous(t *testing.T) {
	sm := session.NewManager("test-session-secret")
	inner, captured := echoUser(t)
	h := LoadUser(sm, testSecret)(inner)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if captured.ID != "" {
		t.Errorf("expected anonymous, got %+v", captured)
	}
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/movies/search", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: got %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := withUser(httptest.NewRequest("GET", "/movies/search", nil),
		&session.User{ID: primitive.NewObjectID().Hex(), Username: "alice"})
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated: got %d, want 200", rec.Code)
	}
}

func TestAdminOnly(t *testing.T) {
	h := AdminOnly()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := withUser(httptest.NewRequest("POST", "/users/x/ratings", nil),
		&session.User{ID: "1", Role: "user"})
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("plain user: got %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = withUser(httptest.NewRequest("POST", "/users/x/ratings", nil),
		&session.User{ID: "1", Role: "admin"})
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin: got %d, want 200", rec.Code)
	}
}
