package services

import (
	"fmt"
	"strings"
	"time"

	"propfinance_app_go/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// strictPolicy strips all markup from untrusted free-text fields
var strictPolicy = bluemonday.StrictPolicy()

// LeadSubmission is the untrusted payload posted by the enquiry form
type LeadSubmission struct {
	ProjectLocation string  `json:"project_location"`
	ProjectPostcode string  `json:"project_postcode"`
	GDV             float64 `json:"gdv"`
	TotalCost       float64 `json:"total_cost"`
	LoanAmount      float64 `json:"loan_amount"`
	LoanType        string  `json:"loan_type"`
	ProjectType     string  `json:"project_type"`
	Units           int     `json:"units"`
	AdditionalInfo  string  `json:"additional_info"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Company         string  `json:"company"`
	SourcePage      string  `json:"source_page"`
	UTMSource       string  `json:"utm_source"`
	UTMMedium       string  `json:"utm_medium"`
	UTMCampaign     string  `json:"utm_campaign"`
}

// ValidateLeadSubmission checks presence of the required fields. Email and
// phone formats are a form-layer UX concern, not validated here.
func ValidateLeadSubmission(sub *LeadSubmission) []string {
	var missing []string
	if strings.TrimSpace(sub.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(sub.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(sub.Phone) == "" {
		missing = append(missing, "phone")
	}
	if sub.LoanAmount <= 0 {
		missing = append(missing, "loan_amount")
	}
	if strings.TrimSpace(sub.LoanType) == "" {
		missing = append(missing, "loan_type")
	}
	if strings.TrimSpace(sub.ProjectLocation) == "" {
		missing = append(missing, "project_location")
	}
	return missing
}

// CreateLead persists a validated submission with a server-assigned timestamp
// and the initial "new" status. This is the durability boundary of the intake
// pipeline: once it returns nil the submission is recorded, whatever happens
// to the notification afterwards.
func CreateLead(db *gorm.DB, sub *LeadSubmission, ipAddress, userAgent string) (*models.Lead, error) {
	lead := models.Lead{
		ProjectLocation: sanitize(sub.ProjectLocation),
		ProjectPostcode: sanitize(sub.ProjectPostcode),
		GDV:             sub.GDV,
		TotalCost:       sub.TotalCost,
		LoanAmount:      sub.LoanAmount,
		LoanType:        sanitize(sub.LoanType),
		ProjectType:     sanitize(sub.ProjectType),
		Units:           sub.Units,
		AdditionalInfo:  sanitize(sub.AdditionalInfo),
		FullName:        sanitize(sub.FullName),
		Email:           sanitize(sub.Email),
		Phone:           sanitize(sub.Phone),
		Company:         sanitize(sub.Company),
		SourcePage:      sanitize(sub.SourcePage),
		UTMSource:       sanitize(sub.UTMSource),
		UTMMedium:       sanitize(sub.UTMMedium),
		UTMCampaign:     sanitize(sub.UTMCampaign),
		IPAddress:       ipAddress,
		UserAgent:       userAgent,
		SubmittedAt:     time.Now().UTC(),
		Status:          models.LeadStatusNew,
	}

	if err := db.Create(&lead).Error; err != nil {
		return nil, fmt.Errorf("failed to persist lead: %w", err)
	}
	return &lead, nil
}

// UpdateLeadStatus moves a lead through the externally-driven workflow
func UpdateLeadStatus(db *gorm.DB, leadID, status string) error {
	if !models.IsValidLeadStatus(status) {
		return fmt.Errorf("invalid lead status %q", status)
	}
	result := db.Model(&models.Lead{}).Where("id = ?", leadID).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update lead status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func sanitize(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
