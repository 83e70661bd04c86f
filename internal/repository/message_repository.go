package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create stores a new message.
func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return translate(r.db.WithContext(ctx).Create(message).Error)
}

// ListRecent returns up to limit messages, newest first.
func (r *messageRepository) ListRecent(ctx context.Context, limit int) ([]model.Message, error) {
	messages := make([]model.Message, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, translate(err)
	}
	return messages, nil
}
