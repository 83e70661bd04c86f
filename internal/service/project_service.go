package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio/internal/cache"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/metrics"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const (
	projectsCacheKey     = "projects:list"
	projectsCacheVersion = "projects:version"
	projectsCacheTTL     = 5 * time.Minute
)

// ProjectService handles portfolio project operations.
type ProjectService interface {
	Create(ctx context.Context, project *model.Project) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo    repository.ProjectRepository
	cache   *cache.Client
	metrics metrics.Recorder
}

// NewProjectService creates a new project service.
func NewProjectService(repo repository.ProjectRepository, cache *cache.Client, recorder metrics.Recorder) ProjectService {
	return &projectService{repo: repo, cache: cache, metrics: metrics.OrNop(recorder)}
}

func (s *projectService) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	if project.Tags == nil {
		project.Tags = []string{}
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	_ = s.cache.Bump(ctx, projectsCacheVersion)
	s.metrics.RecordProjectCreated()
	return project, nil
}

// List retrieves all projects with caching.
func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	key := versionedKey(projectsCacheKey, s.cache.Version(ctx, projectsCacheVersion))
	var cached []model.Project
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	s.cache.SetJSON(ctx, key, projects, projectsCacheTTL)
	return projects, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	_ = s.cache.Bump(ctx, projectsCacheVersion)
	s.metrics.RecordProjectDeleted()
	return nil
}
