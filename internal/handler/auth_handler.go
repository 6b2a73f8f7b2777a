package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/service"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/session"

	"go.uber.org/zap"
)

type AuthHandler struct {
	svc      *service.AuthService
	sessions *session.Manager
	log      *zap.Logger
}

func NewAuthHandler(s *service.AuthService, sm *session.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: s, sessions: sm, log: logger}
}

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

func toUserResponse(u *models.UserDoc) userResponse {
	return userResponse{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
}

// @Summary Sign up
// @Description Creates a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body signupRequest true "account data"
// @Success 201 {object} userResponse
// @Failure 400 {string} string "validation error"
// @Failure 409 {string} string "username already exists"
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.SignUp(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.log.Info("user signed up", zap.String("username", u.Username))
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// @Summary Login
// @Description Checks credentials, starts a cookie session and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credentials"
// @Success 200 {object} map[string]any
// @Failure 401 {string} string "invalid username or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// session state stays untouched on a failed login
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.sessions.SignIn(w, r, u); err != nil {
		h.log.Error("session save failed on login", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	})
}

// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} userResponse
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	u, _ := CurrentUser(r.Context())
	doc, err := h.svc.GetUser(r.Context(), u.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if doc == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(doc))
}

// @Summary Logout
// @Description Clears the session, search pagination included
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		h.log.Warn("session clear failed on logout", zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}
