package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

type projectRepository struct {
	coll *mongo.Collection
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	stamp(&project.ID, &project.CreatedAt)
	if project.Tags == nil {
		project.Tags = []string{}
	}
	_, err := r.coll.InsertOne(ctx, project)
	return translate(err)
}

func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, translate(err)
	}

	projects := make([]model.Project, 0)
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, translate(err)
	}
	return projects, nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
