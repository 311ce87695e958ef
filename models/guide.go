package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guide is an evergreen editorial article (e.g. "Bridging loan exit strategies")
type Guide struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Category    string `gorm:"size:100" json:"category,omitempty"`
	Summary     string `gorm:"type:text" json:"summary"`
	IsPublished bool   `gorm:"index" json:"is_published"`
}

// BeforeCreate hook to generate UUID
func (g *Guide) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Guide) TableName() string {
	return "guides"
}
