package handlers

import (
	"net/http"
	"strconv"

	"propfinance_app_go/db"
	"propfinance_app_go/models"
	"propfinance_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetCountiesHandler returns all counties, optionally filtered by region
func GetCountiesHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	if region := c.QueryParam("region"); region != "" {
		counties, err := svc.GetCountiesByRegion(region)
		if err != nil {
			c.Logger().Error("Failed to fetch counties by region: ", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch counties")
		}
		return c.JSON(http.StatusOK, counties)
	}

	counties, err := svc.GetAllCounties()
	if err != nil {
		c.Logger().Error("Failed to fetch counties: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch counties")
	}
	return c.JSON(http.StatusOK, counties)
}

// GetCountyHandler returns a single county by slug
func GetCountyHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	county, err := svc.GetCountyBySlug(c.Param("countySlug"))
	if err != nil {
		c.Logger().Error("Failed to fetch county: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch county")
	}
	if county == nil {
		return echo.NewHTTPError(http.StatusNotFound, "County not found")
	}
	return c.JSON(http.StatusOK, county)
}

// GetCountyTownsHandler returns the published towns of a county
func GetCountyTownsHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	towns, err := svc.GetTownsByCounty(c.Param("countySlug"))
	if err != nil {
		c.Logger().Error("Failed to fetch towns: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch towns")
	}
	return c.JSON(http.StatusOK, towns)
}

// GetTownHandler returns a single town by its compound key
func GetTownHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	town, err := svc.GetTownBySlug(c.Param("countySlug"), c.Param("townSlug"))
	if err != nil {
		c.Logger().Error("Failed to fetch town: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch town")
	}
	// Unpublished towns exist in the store but are invisible on the public
	// surface; only the admin paths see them
	if town == nil || !town.IsPublished {
		return echo.NewHTTPError(http.StatusNotFound, "Town not found")
	}
	return c.JSON(http.StatusOK, town)
}

// GetTopTownsHandler returns the highest-priority towns for hub pages
func GetTopTownsHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	limit := services.DefaultTopTownsLimit
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 {
		limit = l
	}

	towns, err := svc.GetTopTownsByPriority(limit)
	if err != nil {
		c.Logger().Error("Failed to fetch top towns: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch towns")
	}
	return c.JSON(http.StatusOK, towns)
}

// SearchTownsHandler backs the location typeahead widget
func SearchTownsHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	results, err := svc.SearchTowns(c.QueryParam("q"))
	if err != nil {
		c.Logger().Error("Town search failed: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Search failed")
	}
	return c.JSON(http.StatusOK, results)
}

// GetRelatedTownsHandler returns nearby towns linked from a town page
func GetRelatedTownsHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	limit := services.DefaultRelatedTownsLimit
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 {
		limit = l
	}

	towns, err := svc.GetRelatedTowns(c.Param("countySlug"), c.Param("townSlug"), limit)
	if err != nil {
		c.Logger().Error("Failed to fetch related towns: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch towns")
	}
	return c.JSON(http.StatusOK, towns)
}

// GetLocationServicesHandler returns the published service pages for a town
func GetLocationServicesHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	list, err := svc.GetLocationServices(c.Param("countySlug"), c.Param("townSlug"))
	if err != nil {
		c.Logger().Error("Failed to fetch location services: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch services")
	}
	return c.JSON(http.StatusOK, list)
}

// GetLocationServiceHandler returns one service page by its compound key
func GetLocationServiceHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	record, err := svc.GetLocationService(
		c.Param("countySlug"), c.Param("townSlug"), c.Param("serviceSlug"))
	if err != nil {
		c.Logger().Error("Failed to fetch location service: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch service")
	}
	if record == nil || !record.IsPublished {
		return echo.NewHTTPError(http.StatusNotFound, "Service page not found")
	}
	return c.JSON(http.StatusOK, record)
}

// GetServiceCatalogHandler returns the fixed product catalog
func GetServiceCatalogHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.ServiceCatalog)
}
