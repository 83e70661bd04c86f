package repository

import (
	"fmt"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// NewGormStore wires the GORM repositories around one connection.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Admins:   NewAdminRepository(db),
		Messages: NewMessageRepository(db),
		Projects: NewProjectRepository(db),
	}
}

// AutoMigrate creates or updates the tables used by the GORM store.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Admin{},
		&model.Message{},
		&model.Project{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
