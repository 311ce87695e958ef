package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Town represents a town or city within a county. The (county_slug, town_slug)
// pair is the natural key used by page URLs; county_slug is a soft reference
// into County.Slug with no enforced cascade, so readers must tolerate orphans.
type Town struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	County     string `gorm:"size:100;not null" json:"county"` // Display name, denormalized
	CountySlug string `gorm:"size:100;not null;index;uniqueIndex:idx_town_county_town" json:"county_slug"`
	Town       string `gorm:"column:town;size:100;not null" json:"town"`
	TownSlug   string `gorm:"size:100;not null;uniqueIndex:idx_town_county_town" json:"town_slug"`
	Region     string `gorm:"size:100" json:"region"`

	Population        *int     `json:"population,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	LocalPlanningLink *string  `gorm:"size:300" json:"local_planning_link,omitempty"`

	IsPublished bool `gorm:"index" json:"is_published"`
	Priority    *int `gorm:"index" json:"priority,omitempty"`
}

// TownSearchResult is the reduced projection returned by town search
type TownSearchResult struct {
	Town       string `json:"town"`
	TownSlug   string `json:"town_slug"`
	County     string `json:"county"`
	CountySlug string `json:"county_slug"`
	Region     string `json:"region"`
}

// BeforeCreate hook to generate UUID
func (t *Town) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Town) TableName() string {
	return "towns"
}
