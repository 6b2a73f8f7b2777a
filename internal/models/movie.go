package models

type MovieDoc struct {
	MovieID   int      `json:"movieId" bson:"movieId"`
	Title     string   `json:"title" bson:"title"`
	Genres    []string `json:"genres" bson:"genres"`
	CreatedAt string   `json:"createdAt" bson:"createdAt"`
}
