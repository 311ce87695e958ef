package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strings"

	"propfinance_app_go/config"
	"propfinance_app_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailTransport performs the actual dispatch. It is a variable so tests can
// simulate transport failure without touching the network.
var EmailTransport = sendViaResend

// SendEmail sends an email using the Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged (test mode - not actually sent)")
		return nil
	}

	// Validate configuration
	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	if email.HTMLBody == "" && email.TextBody == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	return EmailTransport(cfg, email)
}

func sendViaResend(cfg *config.Config, email *Email) error {
	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Test Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("%s\n", separator)
}

var leadEmailTmpl = template.Must(template.New("lead_notification").Parse(`
<h2>New funding enquiry</h2>
<p><strong>{{.FullName}}</strong>{{if .Company}} ({{.Company}}){{end}} is looking for
<strong>{{.LoanAmountGBP}}</strong> of {{.LoanType}} finance in <strong>{{.ProjectLocation}}</strong>.</p>
<table cellpadding="4">
  <tr><td>Project location</td><td>{{.ProjectLocation}}{{if .ProjectPostcode}} ({{.ProjectPostcode}}){{end}}</td></tr>
  {{if .ProjectType}}<tr><td>Project type</td><td>{{.ProjectType}}</td></tr>{{end}}
  {{if .Units}}<tr><td>Units</td><td>{{.Units}}</td></tr>{{end}}
  {{if .GDVGBP}}<tr><td>GDV</td><td>{{.GDVGBP}}</td></tr>{{end}}
  {{if .TotalCostGBP}}<tr><td>Total cost</td><td>{{.TotalCostGBP}}</td></tr>{{end}}
  <tr><td>Loan amount</td><td>{{.LoanAmountGBP}}</td></tr>
  <tr><td>Loan type</td><td>{{.LoanType}}</td></tr>
  <tr><td>Email</td><td>{{.Email}}</td></tr>
  <tr><td>Phone</td><td>{{.Phone}}</td></tr>
  {{if .SourcePage}}<tr><td>Source page</td><td>{{.SourcePage}}</td></tr>{{end}}
</table>
{{if .AdditionalInfo}}<p><strong>Additional info:</strong><br>{{.AdditionalInfo}}</p>{{end}}
`))

// leadEmailData carries pre-formatted figures into the notification template
type leadEmailData struct {
	FullName        string
	Company         string
	Email           string
	Phone           string
	ProjectLocation string
	ProjectPostcode string
	ProjectType     string
	Units           int
	GDVGBP          string
	TotalCostGBP    string
	LoanAmountGBP   string
	LoanType        string
	SourcePage      string
	AdditionalInfo  string
}

// BuildLeadNotificationEmail formats the internal notification for a
// persisted lead. Figures are rendered in GBP with no decimal places.
func BuildLeadNotificationEmail(cfg *config.Config, lead *models.Lead) (*Email, error) {
	data := leadEmailData{
		FullName:        lead.FullName,
		Company:         lead.Company,
		Email:           lead.Email,
		Phone:           lead.Phone,
		ProjectLocation: lead.ProjectLocation,
		ProjectPostcode: lead.ProjectPostcode,
		ProjectType:     lead.ProjectType,
		Units:           lead.Units,
		LoanAmountGBP:   FormatGBP(lead.LoanAmount),
		LoanType:        lead.LoanType,
		SourcePage:      lead.SourcePage,
		AdditionalInfo:  lead.AdditionalInfo,
	}
	if lead.GDV > 0 {
		data.GDVGBP = FormatGBP(lead.GDV)
	}
	if lead.TotalCost > 0 {
		data.TotalCostGBP = FormatGBP(lead.TotalCost)
	}

	var buf bytes.Buffer
	if err := leadEmailTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render lead notification: %w", err)
	}

	text := fmt.Sprintf("New funding enquiry\n\nName: %s\nEmail: %s\nPhone: %s\nLocation: %s\nLoan amount: %s\nLoan type: %s\n",
		lead.FullName, lead.Email, lead.Phone, lead.ProjectLocation, FormatGBP(lead.LoanAmount), lead.LoanType)

	return &Email{
		To:       []string{cfg.LeadNotifyTo},
		Subject:  fmt.Sprintf("New lead: %s in %s (%s)", lead.LoanType, lead.ProjectLocation, FormatGBP(lead.LoanAmount)),
		HTMLBody: buf.String(),
		TextBody: text,
	}, nil
}
