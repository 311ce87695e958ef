package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead status workflow (externally driven)
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusClosed    = "closed"
)

// Lead is a funding enquiry submitted through the public intake form.
// Records are append-only; status is the only field mutated after creation.
type Lead struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Project details
	ProjectLocation string  `gorm:"size:200;not null" json:"project_location"`
	ProjectPostcode string  `gorm:"size:20" json:"project_postcode,omitempty"`
	GDV             float64 `json:"gdv"`
	TotalCost       float64 `json:"total_cost"`
	LoanAmount      float64 `gorm:"not null" json:"loan_amount"`
	LoanType        string  `gorm:"size:50;not null" json:"loan_type"`
	ProjectType     string  `gorm:"size:100" json:"project_type,omitempty"`
	Units           int     `json:"units,omitempty"`
	AdditionalInfo  string  `gorm:"type:text" json:"additional_info,omitempty"`

	// Contact details
	FullName string `gorm:"size:150;not null" json:"full_name"`
	Email    string `gorm:"size:200;not null" json:"email"`
	Phone    string `gorm:"size:50;not null" json:"phone"`
	Company  string `gorm:"size:150" json:"company,omitempty"`

	// Attribution
	SourcePage  string `gorm:"size:300" json:"source_page"`
	UTMSource   string `gorm:"size:100" json:"utm_source,omitempty"`
	UTMMedium   string `gorm:"size:100" json:"utm_medium,omitempty"`
	UTMCampaign string `gorm:"size:100" json:"utm_campaign,omitempty"`

	// Audit fields
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `gorm:"type:text" json:"user_agent,omitempty"`

	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
	Status      string    `gorm:"size:20;not null;default:new;index" json:"status"`
}

// BeforeCreate hook to generate UUID
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Lead) TableName() string {
	return "leads"
}

// IsValidLeadStatus checks if the status is valid
func IsValidLeadStatus(status string) bool {
	validStatuses := []string{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusClosed,
	}
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}
