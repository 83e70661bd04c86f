package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"portfolio/internal/model"
)

type adminRepository struct {
	coll *mongo.Collection
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	stamp(&admin.ID, &admin.CreatedAt)
	_, err := r.coll.InsertOne(ctx, admin)
	return translate(err)
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&admin); err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}
