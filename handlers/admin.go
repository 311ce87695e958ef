package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"propfinance_app_go/db"
	"propfinance_app_go/models"
	"propfinance_app_go/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// The admin surface is the door for the offline content-generation pipeline:
// single-record inserts only, no update or delete on taxonomy records.

// CreateCountyHandler inserts a new county
func CreateCountyHandler(c echo.Context) error {
	var county models.County
	if err := c.Bind(&county); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(county.Name) == "" || strings.TrimSpace(county.Slug) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and slug are required")
	}

	county.ID = ""
	county.TownCount = 0

	if err := db.DB.Create(&county).Error; err != nil {
		if isUniqueViolation(err) {
			return echo.NewHTTPError(http.StatusConflict, "County slug already exists")
		}
		c.Logger().Error("Failed to create county: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create county")
	}
	return c.JSON(http.StatusCreated, county)
}

// CreateTownHandler inserts a new town and bumps the owning county's
// denormalized town count. The count is writer-maintained, never derived.
func CreateTownHandler(c echo.Context) error {
	var town models.Town
	if err := c.Bind(&town); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(town.CountySlug) == "" || strings.TrimSpace(town.TownSlug) == "" || strings.TrimSpace(town.Town) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "county_slug, town_slug and town are required")
	}

	town.ID = ""

	if err := db.DB.Create(&town).Error; err != nil {
		if isUniqueViolation(err) {
			return echo.NewHTTPError(http.StatusConflict, "Town already exists in this county")
		}
		c.Logger().Error("Failed to create town: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create town")
	}

	err := db.DB.Model(&models.County{}).
		Where("slug = ?", town.CountySlug).
		UpdateColumn("town_count", gorm.Expr("town_count + 1")).Error
	if err != nil {
		// The town is in; a stale count is repaired by the next import recount
		c.Logger().Errorf("Failed to bump town count for %s: %v", town.CountySlug, err)
	}

	return c.JSON(http.StatusCreated, town)
}

// CreateLocationServiceHandler inserts generated service page content
func CreateLocationServiceHandler(c echo.Context) error {
	var svc models.LocationService
	if err := c.Bind(&svc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(svc.CountySlug) == "" || strings.TrimSpace(svc.TownSlug) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "county_slug and town_slug are required")
	}

	def, ok := models.ServiceBySlug(svc.ServiceSlug)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown service slug")
	}
	svc.ServiceName = def.Name
	svc.ID = ""
	if svc.ContentGeneratedAt == nil {
		now := time.Now().UTC()
		svc.ContentGeneratedAt = &now
	}

	if err := db.DB.Create(&svc).Error; err != nil {
		if isUniqueViolation(err) {
			return echo.NewHTTPError(http.StatusConflict, "Service page already exists for this town")
		}
		c.Logger().Error("Failed to create location service: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create service page")
	}
	return c.JSON(http.StatusCreated, svc)
}

// CreateCaseStudyHandler inserts a new case study
func CreateCaseStudyHandler(c echo.Context) error {
	var study models.CaseStudy
	if err := c.Bind(&study); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(study.Title) == "" || strings.TrimSpace(study.Slug) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and slug are required")
	}

	study.ID = ""
	if study.PublishedAt.IsZero() {
		study.PublishedAt = time.Now().UTC()
	}

	if err := db.DB.Create(&study).Error; err != nil {
		if isUniqueViolation(err) {
			return echo.NewHTTPError(http.StatusConflict, "Case study slug already exists")
		}
		c.Logger().Error("Failed to create case study: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create case study")
	}
	return c.JSON(http.StatusCreated, study)
}

// UploadCaseStudyImageHandler attaches an image to an existing case study
func UploadCaseStudyImageHandler(c echo.Context) error {
	slug := c.Param("slug")

	var study models.CaseStudy
	if err := db.DB.Where("slug = ?", slug).First(&study).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Case study not found")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	if err := services.ValidateImageUpload(file); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	key := services.GenerateCaseStudyImageKey(slug, file.Filename)
	result, err := services.Storage.Upload(context.Background(), file, key)
	if err != nil {
		c.Logger().Error("Failed to upload case study image: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload image")
	}

	if err := db.DB.Model(&study).Update("image_url", result.URL).Error; err != nil {
		services.Storage.Delete(context.Background(), key)
		c.Logger().Error("Failed to store image URL: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store image URL")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"image_url": result.URL})
}

// CreateGuideHandler inserts a new guide
func CreateGuideHandler(c echo.Context) error {
	var guide models.Guide
	if err := c.Bind(&guide); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(guide.Title) == "" || strings.TrimSpace(guide.Slug) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and slug are required")
	}

	guide.ID = ""

	if err := db.DB.Create(&guide).Error; err != nil {
		if isUniqueViolation(err) {
			return echo.NewHTTPError(http.StatusConflict, "Guide slug already exists")
		}
		c.Logger().Error("Failed to create guide: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create guide")
	}
	return c.JSON(http.StatusCreated, guide)
}

// GetLeadsHandler returns leads for the internal team, newest first
func GetLeadsHandler(c echo.Context) error {
	page := 1
	limit := 20
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}

	query := db.DB.Model(&models.Lead{})
	if status := c.QueryParam("status"); status != "" && models.IsValidLeadStatus(status) {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count leads")
	}

	var leads []models.Lead
	offset := (page - 1) * limit
	if err := query.Order("submitted_at DESC").Limit(limit).Offset(offset).Find(&leads).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch leads")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"leads":       leads,
		"total":       total,
		"page":        page,
		"total_pages": (total + int64(limit) - 1) / int64(limit),
	})
}

// UpdateLeadStatusHandler moves a lead through the contact workflow
func UpdateLeadStatusHandler(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if !models.IsValidLeadStatus(body.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
	}

	if err := services.UpdateLeadStatus(db.DB, c.Param("id"), body.Status); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Lead not found")
		}
		c.Logger().Error("Failed to update lead status: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update lead")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// isUniqueViolation reports whether an insert hit a unique index
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
