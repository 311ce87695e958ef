package services

import (
	"fmt"
	"testing"

	"propfinance_app_go/config"
	"propfinance_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		EmailTestMode: true,
		EmailFrom:     "leads@oakbridgecapital.co.uk",
		EmailFromName: "Oakbridge Capital",
		LeadNotifyTo:  "deals@oakbridgecapital.co.uk",
	}
}

func TestBuildLeadNotificationEmail(t *testing.T) {
	cfg := testConfig()
	lead := &models.Lead{
		FullName:        "Jane Developer",
		Company:         "JD Homes Ltd",
		Email:           "jane@jdhomes.co.uk",
		Phone:           "07700 900123",
		ProjectLocation: "Maidstone",
		ProjectPostcode: "ME15 6XH",
		GDV:             2400000,
		LoanAmount:      1250000,
		LoanType:        "development",
		Units:           8,
	}

	email, err := BuildLeadNotificationEmail(cfg, lead)
	require.NoError(t, err)

	assert.Equal(t, []string{"deals@oakbridgecapital.co.uk"}, email.To)
	assert.Equal(t, "New lead: development in Maidstone (£1,250,000)", email.Subject)
	assert.Contains(t, email.HTMLBody, "Jane Developer")
	assert.Contains(t, email.HTMLBody, "£1,250,000")
	assert.Contains(t, email.HTMLBody, "£2,400,000")
	assert.Contains(t, email.HTMLBody, "ME15 6XH")
	assert.Contains(t, email.TextBody, "£1,250,000")
}

func TestBuildLeadNotificationEmailOmitsEmptyFigures(t *testing.T) {
	cfg := testConfig()
	lead := &models.Lead{
		FullName:        "A",
		Email:           "a@b.com",
		Phone:           "123",
		ProjectLocation: "London",
		LoanAmount:      100000,
		LoanType:        "bridging",
	}

	email, err := BuildLeadNotificationEmail(cfg, lead)
	require.NoError(t, err)
	assert.NotContains(t, email.HTMLBody, "GDV")
	assert.NotContains(t, email.HTMLBody, "Total cost")
}

func TestSendEmailTestMode(t *testing.T) {
	// Test mode logs instead of dispatching, even with no API key
	cfg := testConfig()
	err := SendEmail(cfg, &Email{To: []string{"x@y.com"}, Subject: "s", TextBody: "b"})
	assert.NoError(t, err)
}

func TestSendEmailMissingAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.EmailTestMode = false

	err := SendEmail(cfg, &Email{To: []string{"x@y.com"}, Subject: "s", TextBody: "b"})
	assert.ErrorContains(t, err, "RESEND_API_KEY")
}

func TestSendEmailRequiresBody(t *testing.T) {
	cfg := testConfig()
	cfg.EmailTestMode = false
	cfg.ResendAPIKey = "re_test"

	err := SendEmail(cfg, &Email{To: []string{"x@y.com"}, Subject: "s"})
	assert.ErrorContains(t, err, "HTMLBody or TextBody")
}

func TestSendEmailUsesTransport(t *testing.T) {
	original := EmailTransport
	defer func() { EmailTransport = original }()

	var sent *Email
	EmailTransport = func(cfg *config.Config, email *Email) error {
		sent = email
		return nil
	}

	cfg := testConfig()
	cfg.EmailTestMode = false
	cfg.ResendAPIKey = "re_test"

	require.NoError(t, SendEmail(cfg, &Email{To: []string{"x@y.com"}, Subject: "s", TextBody: "b"}))
	require.NotNil(t, sent)
	assert.Equal(t, "s", sent.Subject)

	EmailTransport = func(cfg *config.Config, email *Email) error {
		return fmt.Errorf("transport down")
	}
	assert.ErrorContains(t, SendEmail(cfg, &Email{To: []string{"x@y.com"}, TextBody: "b"}), "transport down")
}
