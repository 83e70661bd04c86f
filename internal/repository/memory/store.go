// Package memory keeps every record in process memory. It backs local runs
// and tests; data is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// NewStore returns a fresh, empty in-memory store.
func NewStore() *repository.Store {
	return &repository.Store{
		Admins:   &AdminRepository{byEmail: make(map[string]model.Admin)},
		Messages: &MessageRepository{},
		Projects: &ProjectRepository{byID: make(map[string]model.Project)},
	}
}

// AdminRepository stores admins keyed by their exact email.
type AdminRepository struct {
	mu      sync.Mutex
	byEmail map[string]model.Admin
}

func (r *AdminRepository) Create(_ context.Context, admin *model.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[admin.Email]; exists {
		return repository.ErrDuplicate
	}
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now().UTC()
	}
	r.byEmail[admin.Email] = *admin
	return nil
}

func (r *AdminRepository) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	admin, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &admin, nil
}

// MessageRepository stores messages in insertion order.
type MessageRepository struct {
	mu       sync.Mutex
	messages []model.Message
}

func (r *MessageRepository) Create(_ context.Context, message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	r.messages = append(r.messages, *message)
	return nil
}

func (r *MessageRepository) ListRecent(_ context.Context, limit int) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Message, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, r.messages[i])
	}
	return out, nil
}

// ProjectRepository stores projects keyed by ID.
type ProjectRepository struct {
	mu   sync.Mutex
	byID map[string]model.Project
}

func (r *ProjectRepository) Create(_ context.Context, project *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	if project.Tags == nil {
		project.Tags = []string{}
	}
	if _, exists := r.byID[project.ID]; exists {
		return repository.ErrDuplicate
	}
	r.byID[project.ID] = *project
	return nil
}

func (r *ProjectRepository) List(_ context.Context) ([]model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Project, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ProjectRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
