package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// County represents a UK ceremonial county served by the brokerage
type County struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name            string `gorm:"size:100;not null" json:"name"`
	Slug            string `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Region          string `gorm:"size:100;index" json:"region"` // e.g. "South East", "Yorkshire and the Humber"
	Description     string `gorm:"type:text" json:"description"`
	MetaTitle       string `gorm:"size:200" json:"meta_title"`
	MetaDescription string `gorm:"size:300" json:"meta_description"`

	// Denormalized cache of the number of towns referencing this county.
	// Maintained by the writer (admin insert / import regeneration pass),
	// never derived at read time.
	TownCount int `gorm:"default:0" json:"town_count"`
}

// BeforeCreate hook to generate UUID
func (c *County) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (County) TableName() string {
	return "counties"
}
