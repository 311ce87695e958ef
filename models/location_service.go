package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FAQ is a single question/answer pair rendered on a service page
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DealExample is an illustrative transaction shown on a service page.
// GDV/LTV figures are opaque display strings; no numeric validation happens here.
type DealExample struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GDV         string `json:"gdv"`
	LoanAmount  string `json:"loan_amount"`
	LTV         string `json:"ltv"`
	LoanType    string `json:"loan_type"`
}

// Rates holds the indicative pricing table for a service in a location
type Rates struct {
	RateFrom       string `json:"rate_from"`
	RateTo         string `json:"rate_to"`
	LTVMax         string `json:"ltv_max"`
	Term           string `json:"term"`
	ArrangementFee string `json:"arrangement_fee"`
}

// LocationService is the generated content for one (county, town, service)
// page. Town/County display names are denormalized onto the record so a page
// render never needs a join; they are refreshed only by a full content
// regeneration pass.
type LocationService struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CountySlug  string `gorm:"size:100;not null;index;uniqueIndex:idx_locsvc_key" json:"county_slug"`
	TownSlug    string `gorm:"size:100;not null;uniqueIndex:idx_locsvc_key" json:"town_slug"`
	ServiceSlug string `gorm:"size:100;not null;uniqueIndex:idx_locsvc_key" json:"service_slug"`

	Town        string `gorm:"size:100;not null" json:"town"`
	County      string `gorm:"size:100;not null" json:"county"`
	ServiceName string `gorm:"size:150;not null" json:"service_name"`

	MarketCommentary string      `gorm:"type:text" json:"market_commentary"`
	FAQs             []FAQ       `gorm:"serializer:json" json:"faqs"`
	DealExample      DealExample `gorm:"serializer:json" json:"deal_example"`
	Rates            Rates       `gorm:"serializer:json" json:"rates"`

	MetaTitle       string `gorm:"size:200" json:"meta_title"`
	MetaDescription string `gorm:"size:300" json:"meta_description"`

	IsPublished        bool       `gorm:"index" json:"is_published"`
	ContentGeneratedAt *time.Time `json:"content_generated_at,omitempty"`
}

// BeforeCreate hook to generate UUID
func (ls *LocationService) BeforeCreate(tx *gorm.DB) error {
	if ls.ID == "" {
		ls.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (LocationService) TableName() string {
	return "location_services"
}
