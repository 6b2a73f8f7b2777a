package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const ctxUserKey ctxKey = "currentUser"

// CurrentUser pulls the authenticated user out of the request context.
func CurrentUser(ctx context.Context) (*session.User, bool) {
	u, ok := ctx.Value(ctxUserKey).(*session.User)
	return u, ok
}

// LoadUser resolves the caller's identity and injects it into the context.
// Interactive clients authenticate with the session cookie; programmatic
// ones with a Bearer token. The cookie wins when both are present.
func LoadUser(sm *session.Manager, jwtSecret string) func(http.Handler) http.Handler {
	secretBytes := []byte(jwtSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if u, ok := sm.Current(r); ok {
				next.ServeHTTP(w, r.WithContext(
					context.WithValue(r.Context(), ctxUserKey, u)))
				return
			}

			if u, ok := userFromBearer(r, secretBytes); ok {
				next.ServeHTTP(w, r.WithContext(
					context.WithValue(r.Context(), ctxUserKey, u)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func userFromBearer(r *http.Request, secret []byte) (*session.User, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, false
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &session.User{ID: sub, Username: username, Role: role}, true
}

// RequireAuth rejects anonymous requests.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := CurrentUser(r.Context()); !ok {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly lets only role == "admin" through.
func AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r.Context())
			if !ok || u.Role != "admin" {
				http.Error(w, "admin only", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
