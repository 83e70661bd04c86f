// Package mongostore keeps admins, messages and projects as documents in MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"portfolio/internal/repository"
)

const (
	adminsCollection   = "admins"
	messagesCollection = "messages"
	projectsCollection = "projects"
)

// NewStore wires the document repositories around one database.
func NewStore(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Admins:   &adminRepository{coll: db.Collection(adminsCollection)},
		Messages: &messageRepository{coll: db.Collection(messagesCollection)},
		Projects: &projectRepository{coll: db.Collection(projectsCollection)},
	}
}

// EnsureIndexes creates the indexes the repositories depend on.
// The unique email index is what keeps one admin per email under concurrency.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(adminsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	}); err != nil {
		return fmt.Errorf("create admins index: %w", err)
	}
	for _, name := range []string{messagesCollection, projectsCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		}); err != nil {
			return fmt.Errorf("create %s index: %w", name, err)
		}
	}
	return nil
}

// stamp fills in the ID and creation time the way GORM hooks do for SQL.
func stamp(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	default:
		return err
	}
}
