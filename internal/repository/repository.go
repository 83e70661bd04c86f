package repository

import (
	"context"
	"errors"

	"portfolio/internal/model"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = errors.New("duplicate record")
)

// AdminRepository defines admin persistence operations.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
}

// MessageRepository defines contact message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	ListRecent(ctx context.Context, limit int) ([]model.Message, error)
}

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	List(ctx context.Context) ([]model.Project, error)
	Delete(ctx context.Context, id string) error
}

// Store groups the repositories of one storage engine.
type Store struct {
	Admins   AdminRepository
	Messages MessageRepository
	Projects ProjectRepository
}
