package handlers

import (
	"encoding/xml"
	"net/http"
	"time"

	"propfinance_app_go/config"
	"propfinance_app_go/db"
	"propfinance_app_go/models"
	"propfinance_app_go/services"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler generates the dynamic XML sitemap covering the full
// published taxonomy cross-product
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	taxonomy, caseStudies, guides, err := services.LoadSitemapTaxonomy(db.DB)
	if err != nil {
		c.Logger().Error("Failed to load taxonomy for sitemap: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate sitemap")
	}

	entries := services.BuildSitemapEntries(cfg.SiteURL, taxonomy, models.ServiceCatalog, caseStudies, guides)

	urls := make([]SitemapURL, 0, len(entries))
	for _, e := range entries {
		u := SitemapURL{
			Loc:        e.URL,
			ChangeFreq: e.ChangeFreq,
			Priority:   e.Priority,
		}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.Format(time.RFC3339)
		}
		urls = append(urls, u)
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}
