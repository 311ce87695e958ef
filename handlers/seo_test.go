package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"propfinance_app_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetSEO(t *testing.T) {
	seo := GetSEO("landing")
	assert.NotNil(t, seo)
	assert.Contains(t, seo.Title, "Oakbridge Capital")
	assert.Equal(t, siteBaseURL+"/", seo.Canonical)

	// Returned copy must not leak mutations back into the map
	seo.Title = "mutated"
	assert.NotEqual(t, "mutated", GetSEO("landing").Title)

	assert.Nil(t, GetSEO("no-such-page"))
}

func TestGetPageSEOHandler(t *testing.T) {
	t.Run("Known page", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/seo/about", nil)
		c.SetParamNames("page")
		c.SetParamValues("about")

		err := GetPageSEOHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "About Us")
	})

	t.Run("Unknown page", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/api/seo/blog", nil)
		c.SetParamNames("page")
		c.SetParamValues("blog")

		err := GetPageSEOHandler(c)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, err.(*echo.HTTPError).Code)
	})

	t.Run("Thank-you page is noindex", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/seo/thank-you", nil)
		c.SetParamNames("page")
		c.SetParamValues("thank-you")

		assert.NoError(t, GetPageSEOHandler(c))

		var resp seoResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.NoIndex)
		// OG fields fall back to the page title and description
		assert.Equal(t, resp.Title, resp.OGTitle)
		assert.Equal(t, resp.Description, resp.OGDescription)
	})
}

func TestGetCountySEOHandler(t *testing.T) {
	database := setupTestDB(t)
	seedHandlerTaxonomy(t, database)
	assert.NoError(t, database.Create(&models.County{
		Name: "Surrey", Slug: "surrey", Region: "South East",
		MetaTitle:       "Surrey Property Finance | Oakbridge Capital",
		MetaDescription: "Authored description for Surrey.",
	}).Error)

	t.Run("Generated copy fills missing meta", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/seo/counties/kent", nil)
		c.SetParamNames("countySlug")
		c.SetParamValues("kent")

		assert.NoError(t, GetCountySEOHandler(c))

		var resp seoResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Title, "Kent")
		assert.Equal(t, siteBaseURL+"/kent", resp.Canonical)
		assert.Equal(t, defaultOGImage, resp.OGImage)
	})

	t.Run("Authored meta wins", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/seo/counties/surrey", nil)
		c.SetParamNames("countySlug")
		c.SetParamValues("surrey")

		assert.NoError(t, GetCountySEOHandler(c))

		var resp seoResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Surrey Property Finance | Oakbridge Capital", resp.Title)
		assert.Equal(t, "Authored description for Surrey.", resp.Description)
	})

	t.Run("Unknown county", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/api/seo/counties/narnia", nil)
		c.SetParamNames("countySlug")
		c.SetParamValues("narnia")

		err := GetCountySEOHandler(c)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, err.(*echo.HTTPError).Code)
	})
}

func TestGetTownSEOHandler(t *testing.T) {
	database := setupTestDB(t)
	seedHandlerTaxonomy(t, database)

	t.Run("Published town", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/seo/counties/kent/towns/maidstone", nil)
		c.SetParamNames("countySlug", "townSlug")
		c.SetParamValues("kent", "maidstone")

		assert.NoError(t, GetTownSEOHandler(c))

		var resp seoResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Title, "Maidstone")
		assert.Equal(t, siteBaseURL+"/kent/maidstone", resp.Canonical)
	})

	t.Run("Unpublished town hidden", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/api/seo/counties/kent/towns/dartford", nil)
		c.SetParamNames("countySlug", "townSlug")
		c.SetParamValues("kent", "dartford")

		err := GetTownSEOHandler(c)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, err.(*echo.HTTPError).Code)
	})
}

func TestGetLocationServiceSEOHandler(t *testing.T) {
	database := setupTestDB(t)
	seedHandlerTaxonomy(t, database)

	t.Run("Published service", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/seo/counties/kent/towns/maidstone/services/bridging-loans", nil)
		c.SetParamNames("countySlug", "townSlug", "serviceSlug")
		c.SetParamValues("kent", "maidstone", "bridging-loans")

		assert.NoError(t, GetLocationServiceSEOHandler(c))

		var resp seoResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Bridging Loans in Maidstone | Oakbridge Capital", resp.Title)
		assert.Equal(t, siteBaseURL+"/kent/maidstone/bridging-loans", resp.Canonical)
	})

	t.Run("Unpublished service hidden", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/api/seo/counties/kent/towns/maidstone/services/development-finance", nil)
		c.SetParamNames("countySlug", "townSlug", "serviceSlug")
		c.SetParamValues("kent", "maidstone", "development-finance")

		err := GetLocationServiceSEOHandler(c)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, err.(*echo.HTTPError).Code)
	})
}
