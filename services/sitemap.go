package services

import (
	"fmt"
	"time"

	"propfinance_app_go/models"

	"gorm.io/gorm"
)

// SitemapEntry is one address in the crawler-discovery file
type SitemapEntry struct {
	URL        string
	LastMod    time.Time
	ChangeFreq string // "weekly" or "monthly"
	Priority   float32
}

// CountyTowns pairs a county with its published towns for enumeration
type CountyTowns struct {
	County models.County
	Towns  []models.Town
}

// Static site sections with their fixed crawl hints
var staticSections = []SitemapEntry{
	{URL: "/", ChangeFreq: "weekly", Priority: 1.0},
	{URL: "/about", ChangeFreq: "monthly", Priority: 0.8},
	{URL: "/contact", ChangeFreq: "monthly", Priority: 0.8},
	{URL: "/services", ChangeFreq: "monthly", Priority: 0.8},
	{URL: "/case-studies", ChangeFreq: "weekly", Priority: 0.7},
	{URL: "/privacy", ChangeFreq: "monthly", Priority: 0.5},
	{URL: "/terms", ChangeFreq: "monthly", Priority: 0.5},
}

// BuildSitemapEntries enumerates every canonical page address: the static
// sections, case studies, guides, then one address per county, per town and
// per (town, service) pair. It is a pure function of its inputs and performs
// no I/O. Unpublished towns are skipped here even if a caller forgot to
// pre-filter; leaking an unpublished address gets it crawled prematurely.
func BuildSitemapEntries(baseURL string, taxonomy []CountyTowns, services []models.ServiceDefinition, caseStudies []models.CaseStudy, guides []models.Guide) []SitemapEntry {
	entries := make([]SitemapEntry, 0, len(staticSections))

	for _, s := range staticSections {
		s.URL = baseURL + s.URL
		entries = append(entries, s)
	}

	for _, cs := range caseStudies {
		entries = append(entries, SitemapEntry{
			URL:        fmt.Sprintf("%s/case-studies/%s", baseURL, cs.Slug),
			LastMod:    cs.UpdatedAt,
			ChangeFreq: "monthly",
			Priority:   0.6,
		})
	}

	entries = append(entries, SitemapEntry{
		URL:        baseURL + "/guides",
		ChangeFreq: "weekly",
		Priority:   0.7,
	})
	for _, g := range guides {
		entries = append(entries, SitemapEntry{
			URL:        fmt.Sprintf("%s/guides/%s", baseURL, g.Slug),
			LastMod:    g.UpdatedAt,
			ChangeFreq: "monthly",
			Priority:   0.6,
		})
	}

	for _, ct := range taxonomy {
		entries = append(entries, SitemapEntry{
			URL:        fmt.Sprintf("%s/%s", baseURL, ct.County.Slug),
			LastMod:    ct.County.UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})

		for _, town := range ct.Towns {
			if !town.IsPublished {
				continue
			}
			entries = append(entries, SitemapEntry{
				URL:        fmt.Sprintf("%s/%s/%s", baseURL, ct.County.Slug, town.TownSlug),
				LastMod:    town.UpdatedAt,
				ChangeFreq: "weekly",
				Priority:   0.7,
			})

			for _, svc := range services {
				entries = append(entries, SitemapEntry{
					URL:        fmt.Sprintf("%s/%s/%s/%s", baseURL, ct.County.Slug, town.TownSlug, svc.Slug),
					LastMod:    town.UpdatedAt,
					ChangeFreq: "monthly",
					Priority:   0.6,
				})
			}
		}
	}

	return entries
}

// LoadSitemapTaxonomy reads the published taxonomy and editorial records the
// sitemap needs. This is the only I/O the sitemap performs.
func LoadSitemapTaxonomy(db *gorm.DB) ([]CountyTowns, []models.CaseStudy, []models.Guide, error) {
	var counties []models.County
	if err := db.Order("created_at").Find(&counties).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch counties for sitemap: %w", err)
	}

	var towns []models.Town
	if err := db.Where("is_published = ?", true).Find(&towns).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch towns for sitemap: %w", err)
	}

	townsByCounty := make(map[string][]models.Town, len(counties))
	for _, t := range towns {
		townsByCounty[t.CountySlug] = append(townsByCounty[t.CountySlug], t)
	}

	taxonomy := make([]CountyTowns, 0, len(counties))
	for _, c := range counties {
		taxonomy = append(taxonomy, CountyTowns{County: c, Towns: townsByCounty[c.Slug]})
	}

	var caseStudies []models.CaseStudy
	if err := db.Order("created_at DESC").Find(&caseStudies).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch case studies for sitemap: %w", err)
	}

	var guides []models.Guide
	if err := db.Where("is_published = ?", true).Find(&guides).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch guides for sitemap: %w", err)
	}

	return taxonomy, caseStudies, guides, nil
}
