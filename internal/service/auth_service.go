package service

import (
	"context"
	"fmt"
	"time"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of UserRepository the auth service needs.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.UserDoc, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error)
	Insert(ctx context.Context, u *models.UserDoc) error
}

type AuthService struct {
	users     UserStore
	jwtSecret []byte
}

func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(secret)}
}

// SignUp creates a new user. Uniqueness comes from the unique index on
// username; a duplicate-key error from the insert maps to ErrDuplicateUser,
// so two concurrent sign-ups with the same name cannot both win.
func (s *AuthService) SignUp(ctx context.Context, username, password, email string) (*models.UserDoc, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.UserDoc{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Role:         "user",
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.users.Insert(ctx, u); err != nil {
		if repository.IsDup(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// Login checks the credentials and, on match, returns the user plus a
// signed token for programmatic clients. Any mismatch comes back as
// ErrInvalidCredentials without saying which half was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserDoc, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      u.ID.Hex(),
		"username": u.Username,
		"role":     u.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	sToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return sToken, u, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*models.UserDoc, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q", id)
	}
	return s.users.FindByID(ctx, oid)
}
