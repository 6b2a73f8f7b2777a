package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type UserDoc struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	Email        string             `json:"email" bson:"email"`
	Role         string             `json:"role" bson:"role"`
	CreatedAt    string             `json:"createdAt" bson:"createdAt"`
}
