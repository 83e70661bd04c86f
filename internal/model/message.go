package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a contact-form submission.
type Message struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey" bson:"_id"`
	Name      string    `json:"name" gorm:"size:200;not null" bson:"name"`
	Email     string    `json:"email" gorm:"size:255;not null" bson:"email"`
	Body      string    `json:"message" gorm:"type:text;not null" bson:"body"`
	CreatedAt time.Time `json:"created_at" gorm:"index" bson:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
