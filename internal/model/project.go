package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID          string    `json:"id" gorm:"type:char(36);primaryKey" bson:"_id"`
	Title       string    `json:"title" gorm:"size:255;not null" bson:"title"`
	Description string    `json:"description" gorm:"type:text;not null" bson:"description"`
	Tags        []string  `json:"tags" gorm:"serializer:json;type:text" bson:"tags"`
	Link        string    `json:"link,omitempty" gorm:"size:2048" bson:"link,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"index" bson:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return nil
}
