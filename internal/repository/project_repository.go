package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create stores a new project.
func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return translate(r.db.WithContext(ctx).Create(project).Error)
}

// List returns all projects, newest first.
func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	projects := make([]model.Project, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, translate(err)
	}
	return projects, nil
}

// Delete removes a project by ID.
func (r *projectRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
