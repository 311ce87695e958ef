package handlers

import (
	"net/http"
	"strings"

	"propfinance_app_go/config"
	"propfinance_app_go/db"
	"propfinance_app_go/services"

	"github.com/labstack/echo/v4"
)

// SubmitLeadHandler accepts a funding enquiry from the public form.
// Validation and configuration problems are reported before anything is
// written; once the lead is persisted the submitter always gets a success
// response, whatever happens to the notification.
func SubmitLeadHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	var sub services.LeadSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if missing := services.ValidateLeadSubmission(&sub); len(missing) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "))
	}

	// A missing transport key is an operator problem; surface it before we
	// record anything rather than accepting enquiries nobody will see.
	if !cfg.EmailTestMode && cfg.ResendAPIKey == "" {
		return echo.NewHTTPError(http.StatusInternalServerError, "Notification transport is not configured")
	}

	lead, err := services.CreateLead(db.DB, &sub, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		c.Logger().Error("Failed to persist lead: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to submit enquiry")
	}

	// The lead is durable from here on. Notification failure is logged and
	// swallowed; the submitter must never see it.
	email, err := services.BuildLeadNotificationEmail(cfg, lead)
	if err != nil {
		c.Logger().Errorf("Lead %s persisted but notification could not be built: %v", lead.ID, err)
	} else if err := services.SendEmail(cfg, email); err != nil {
		c.Logger().Errorf("Lead %s persisted but notification failed: %v", lead.ID, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}
