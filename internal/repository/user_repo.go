package repository

import (
	"context"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/db"
	"github.com/smuddana-7/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{col: db.DB().Collection("users")}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

// Insert relies on the unique index on username: a concurrent sign-up with
// the same name surfaces as a duplicate-key error instead of a second user.
func (r *UserRepository) Insert(ctx context.Context, u *models.UserDoc) error {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

// IsDup reports whether err is a Mongo duplicate-key error.
func IsDup(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
