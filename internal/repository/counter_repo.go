package repository

import (
	"context"

	"github.com/smuddana-7/Movie-Recommendation-System/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CounterRepository struct {
	col *mongo.Collection
}

func NewCounterRepository() *CounterRepository {
	return &CounterRepository{col: db.DB().Collection("counters")}
}

// Next returns the next value of a named sequence. A single
// FindOneAndUpdate with $inc and upsert keeps the sequence atomic under
// concurrent callers, unlike a count+1 over the target collection.
func (r *CounterRepository) Next(ctx context.Context, name string) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int `bson:"seq"`
	}
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}
