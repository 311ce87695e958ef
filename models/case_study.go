package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseStudy is a completed deal written up for the marketing site
type CaseStudy struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string `gorm:"size:200;not null" json:"title"`
	Slug     string `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Location string `gorm:"size:150;not null" json:"location"`
	County   string `gorm:"size:100" json:"county,omitempty"`

	ProjectType string `gorm:"size:100;not null" json:"project_type"`
	GDV         string `gorm:"size:50" json:"gdv"`
	LoanAmount  string `gorm:"size:50" json:"loan_amount"`
	LoanType    string `gorm:"size:50" json:"loan_type"`
	LTV         string `gorm:"size:20" json:"ltv"`

	Description string `gorm:"type:text" json:"description"`
	Challenge   string `gorm:"type:text" json:"challenge"`
	Solution    string `gorm:"type:text" json:"solution"`
	Outcome     string `gorm:"type:text" json:"outcome"`

	ImageURL    string    `gorm:"size:300" json:"image_url,omitempty"`
	IsFeatured  bool      `gorm:"index" json:"is_featured"`
	PublishedAt time.Time `json:"published_at"`
}

// BeforeCreate hook to generate UUID
func (cs *CaseStudy) BeforeCreate(tx *gorm.DB) error {
	if cs.ID == "" {
		cs.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (CaseStudy) TableName() string {
	return "case_studies"
}
