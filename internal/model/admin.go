package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is an identity allowed to log in and read the inbox.
type Admin struct {
	ID           string    `json:"id" gorm:"type:char(36);primaryKey" bson:"_id"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null" bson:"email"`
	PasswordHash string    `json:"-" gorm:"size:255;not null" bson:"password_hash"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
