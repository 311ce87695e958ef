package middleware

import (
	"net/http"

	"propfinance_app_go/config"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// AdminKeyHeader carries the shared key for the content-generation pipeline
const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey guards the administrative write surface. The presented key
// is checked against the bcrypt hash from configuration; with no hash set the
// whole surface is disabled.
func RequireAdminKey(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.AdminKeyHash == "" {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "Admin access is not configured")
			}

			key := c.Request().Header.Get(AdminKeyHeader)
			if key == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing admin key")
			}

			if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminKeyHash), []byte(key)); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid admin key")
			}

			return next(c)
		}
	}
}
