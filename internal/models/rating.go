package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RatingDoc is what lives in Mongo. The _id is the only identifier a
// rating has; delete-rating takes its hex form.
type RatingDoc struct {
	ID         primitive.ObjectID `json:"ratingId" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId"`
	MovieID    int                `json:"movieId" bson:"movieId"`
	MovieTitle string             `json:"movieTitle" bson:"movieTitle"`
	Rating     float64            `json:"rating" bson:"rating"`
	UpdatedAt  string             `json:"updatedAt" bson:"updatedAt"`
}

// TopMovie is one row of the top-rated aggregation: a movie title joined
// onto its average rating across all users.
type TopMovie struct {
	MovieID   int     `json:"movieId" bson:"movieId"`
	Title     string  `json:"title" bson:"title"`
	AvgRating float64 `json:"avgRating" bson:"avgRating"`
	Count     int     `json:"count" bson:"count"`
}
