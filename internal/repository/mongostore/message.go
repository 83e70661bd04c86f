package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"portfolio/internal/model"
)

type messageRepository struct {
	coll *mongo.Collection
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	stamp(&message.ID, &message.CreatedAt)
	_, err := r.coll.InsertOne(ctx, message)
	return translate(err)
}

func (r *messageRepository) ListRecent(ctx context.Context, limit int) ([]model.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, translate(err)
	}

	messages := make([]model.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, translate(err)
	}
	return messages, nil
}
