package services

import (
	"testing"

	"propfinance_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func validSubmission() *LeadSubmission {
	return &LeadSubmission{
		ProjectLocation: "London",
		LoanAmount:      100000,
		LoanType:        "bridging",
		FullName:        "A",
		Email:           "a@b.com",
		Phone:           "123",
	}
}

func TestValidateLeadSubmission(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*LeadSubmission)
		missing []string
	}{
		{
			name:   "all required present",
			mutate: func(s *LeadSubmission) {},
		},
		{
			name:    "missing full_name",
			mutate:  func(s *LeadSubmission) { s.FullName = "" },
			missing: []string{"full_name"},
		},
		{
			name:    "whitespace-only full_name",
			mutate:  func(s *LeadSubmission) { s.FullName = "   " },
			missing: []string{"full_name"},
		},
		{
			name:    "missing email",
			mutate:  func(s *LeadSubmission) { s.Email = "" },
			missing: []string{"email"},
		},
		{
			name:    "missing phone",
			mutate:  func(s *LeadSubmission) { s.Phone = "" },
			missing: []string{"phone"},
		},
		{
			name:    "zero loan amount",
			mutate:  func(s *LeadSubmission) { s.LoanAmount = 0 },
			missing: []string{"loan_amount"},
		},
		{
			name:    "missing loan_type",
			mutate:  func(s *LeadSubmission) { s.LoanType = "" },
			missing: []string{"loan_type"},
		},
		{
			name:    "missing project_location",
			mutate:  func(s *LeadSubmission) { s.ProjectLocation = "" },
			missing: []string{"project_location"},
		},
		{
			name: "multiple missing",
			mutate: func(s *LeadSubmission) {
				s.FullName = ""
				s.Email = ""
			},
			missing: []string{"full_name", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(sub)
			assert.Equal(t, tt.missing, ValidateLeadSubmission(sub))
		})
	}
}

func TestCreateLead(t *testing.T) {
	testDB := setupTestDB(t)

	sub := validSubmission()
	sub.GDV = 500000
	sub.Company = "A Developments Ltd"
	sub.SourcePage = "/kent/maidstone/bridging-loans"

	lead, err := CreateLead(testDB, sub, "203.0.113.9", "test-agent")
	require.NoError(t, err)

	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.False(t, lead.SubmittedAt.IsZero())
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "203.0.113.9", lead.IPAddress)

	var stored models.Lead
	require.NoError(t, testDB.First(&stored, "id = ?", lead.ID).Error)
	assert.Equal(t, "A", stored.FullName)
	assert.Equal(t, float64(100000), stored.LoanAmount)
	assert.Equal(t, "/kent/maidstone/bridging-loans", stored.SourcePage)
}

func TestCreateLeadSanitizesFreeText(t *testing.T) {
	testDB := setupTestDB(t)

	sub := validSubmission()
	sub.AdditionalInfo = `<script>alert("x")</script>Planning granted for 4 units`
	sub.FullName = "<b>A</b>"

	lead, err := CreateLead(testDB, sub, "", "")
	require.NoError(t, err)

	assert.Equal(t, "Planning granted for 4 units", lead.AdditionalInfo)
	assert.Equal(t, "A", lead.FullName)
}

func TestDuplicateSubmissionsCreateDuplicateLeads(t *testing.T) {
	// No idempotency key is enforced: a retried submission is a new record
	testDB := setupTestDB(t)

	sub := validSubmission()
	_, err := CreateLead(testDB, sub, "", "")
	require.NoError(t, err)
	_, err = CreateLead(testDB, sub, "", "")
	require.NoError(t, err)

	var count int64
	require.NoError(t, testDB.Model(&models.Lead{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUpdateLeadStatus(t *testing.T) {
	testDB := setupTestDB(t)

	lead, err := CreateLead(testDB, validSubmission(), "", "")
	require.NoError(t, err)

	require.NoError(t, UpdateLeadStatus(testDB, lead.ID, models.LeadStatusContacted))

	var stored models.Lead
	require.NoError(t, testDB.First(&stored, "id = ?", lead.ID).Error)
	assert.Equal(t, models.LeadStatusContacted, stored.Status)

	assert.Error(t, UpdateLeadStatus(testDB, lead.ID, "escalated"))
	assert.ErrorIs(t, UpdateLeadStatus(testDB, "no-such-id", models.LeadStatusClosed), gorm.ErrRecordNotFound)
}
