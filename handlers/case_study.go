package handlers

import (
	"net/http"
	"strconv"

	"propfinance_app_go/db"
	"propfinance_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetCaseStudiesHandler returns case studies, most recent first.
// With ?featured=true it returns the featured set for the homepage.
func GetCaseStudiesHandler(c echo.Context) error {
	svc := services.NewCaseStudyService(db.DB)

	if c.QueryParam("featured") == "true" {
		limit := services.DefaultFeaturedCaseStudies
		if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 {
			limit = l
		}
		studies, err := svc.GetFeatured(limit)
		if err != nil {
			c.Logger().Error("Failed to fetch featured case studies: ", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch case studies")
		}
		return c.JSON(http.StatusOK, studies)
	}

	studies, err := svc.GetAll()
	if err != nil {
		c.Logger().Error("Failed to fetch case studies: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch case studies")
	}
	return c.JSON(http.StatusOK, studies)
}

// GetCaseStudyHandler returns a single case study by slug
func GetCaseStudyHandler(c echo.Context) error {
	svc := services.NewCaseStudyService(db.DB)

	study, err := svc.GetBySlug(c.Param("slug"))
	if err != nil {
		c.Logger().Error("Failed to fetch case study: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch case study")
	}
	if study == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Case study not found")
	}
	return c.JSON(http.StatusOK, study)
}
