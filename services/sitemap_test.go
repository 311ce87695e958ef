package services

import (
	"strings"
	"testing"

	"propfinance_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://oakbridgecapital.co.uk"

func buildTestTaxonomy() []CountyTowns {
	return []CountyTowns{
		{
			County: models.County{Name: "Kent", Slug: "kent"},
			Towns: []models.Town{
				{CountySlug: "kent", TownSlug: "maidstone", IsPublished: true},
				{CountySlug: "kent", TownSlug: "canterbury", IsPublished: true},
			},
		},
		{
			County: models.County{Name: "Essex", Slug: "essex"},
			Towns: []models.Town{
				{CountySlug: "essex", TownSlug: "chelmsford", IsPublished: true},
			},
		},
	}
}

func TestBuildSitemapEntriesTierCounts(t *testing.T) {
	taxonomy := buildTestTaxonomy()
	entries := BuildSitemapEntries(testBaseURL, taxonomy, models.ServiceCatalog, nil, nil)

	numServices := len(models.ServiceCatalog)
	totalTowns := 3
	numCounties := 2

	// counties + towns + towns×services, on top of static sections and the
	// guide index
	expectedLocationTier := numCounties + totalTowns + numServices*totalTowns
	actualLocationTier := len(entries) - 7 /* static */ - 1 /* guide index */
	assert.Equal(t, expectedLocationTier, actualLocationTier)
}

func TestBuildSitemapEntriesNoDuplicates(t *testing.T) {
	caseStudies := []models.CaseStudy{{Slug: "maidstone-new-build"}}
	guides := []models.Guide{{Slug: "bridging-loan-exit-strategies"}}

	entries := BuildSitemapEntries(testBaseURL, buildTestTaxonomy(), models.ServiceCatalog, caseStudies, guides)

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		assert.False(t, seen[e.URL], "duplicate URL %s", e.URL)
		seen[e.URL] = true
	}
}

func TestBuildSitemapEntriesSkipsUnpublishedTowns(t *testing.T) {
	taxonomy := []CountyTowns{
		{
			County: models.County{Name: "Kent", Slug: "kent"},
			Towns: []models.Town{
				{CountySlug: "kent", TownSlug: "maidstone", IsPublished: true},
				{CountySlug: "kent", TownSlug: "dartford", IsPublished: false},
			},
		},
	}

	entries := BuildSitemapEntries(testBaseURL, taxonomy, models.ServiceCatalog, nil, nil)

	for _, e := range entries {
		assert.NotContains(t, e.URL, "dartford")
	}
}

func TestBuildSitemapEntriesTierMetadata(t *testing.T) {
	entries := BuildSitemapEntries(testBaseURL, buildTestTaxonomy(), models.ServiceCatalog, nil, nil)

	byURL := make(map[string]SitemapEntry, len(entries))
	for _, e := range entries {
		byURL[e.URL] = e
	}

	county := byURL[testBaseURL+"/kent"]
	assert.Equal(t, float32(0.8), county.Priority)
	assert.Equal(t, "weekly", county.ChangeFreq)

	town := byURL[testBaseURL+"/kent/maidstone"]
	assert.Equal(t, float32(0.7), town.Priority)
	assert.Equal(t, "weekly", town.ChangeFreq)

	service := byURL[testBaseURL+"/kent/maidstone/bridging-loans"]
	assert.Equal(t, float32(0.6), service.Priority)
	assert.Equal(t, "monthly", service.ChangeFreq)

	home := byURL[testBaseURL+"/"]
	assert.Equal(t, float32(1.0), home.Priority)
}

func TestBuildSitemapEntriesEditorialTiers(t *testing.T) {
	caseStudies := []models.CaseStudy{{Slug: "leeds-mill-conversion"}}
	guides := []models.Guide{{Slug: "what-is-ltgdv"}}

	entries := BuildSitemapEntries(testBaseURL, nil, nil, caseStudies, guides)

	var urls []string
	for _, e := range entries {
		urls = append(urls, e.URL)
	}
	assert.Contains(t, urls, testBaseURL+"/case-studies/leeds-mill-conversion")
	assert.Contains(t, urls, testBaseURL+"/guides/what-is-ltgdv")
	assert.Contains(t, urls, testBaseURL+"/guides")
}

func TestLoadSitemapTaxonomyPublishedOnly(t *testing.T) {
	testDB := setupTestDB(t)

	require.NoError(t, testDB.Create(&models.County{Name: "Kent", Slug: "kent"}).Error)
	require.NoError(t, testDB.Create(&models.Town{
		County: "Kent", CountySlug: "kent", Town: "Maidstone", TownSlug: "maidstone", IsPublished: true,
	}).Error)
	require.NoError(t, testDB.Create(&models.Town{
		County: "Kent", CountySlug: "kent", Town: "Dartford", TownSlug: "dartford", IsPublished: false,
	}).Error)
	require.NoError(t, testDB.Create(&models.Guide{
		Title: "Draft guide", Slug: "draft-guide", IsPublished: false,
	}).Error)

	taxonomy, caseStudies, guides, err := LoadSitemapTaxonomy(testDB)
	require.NoError(t, err)
	assert.Empty(t, caseStudies)
	assert.Empty(t, guides)

	require.Len(t, taxonomy, 1)
	require.Len(t, taxonomy[0].Towns, 1)
	assert.Equal(t, "maidstone", taxonomy[0].Towns[0].TownSlug)

	entries := BuildSitemapEntries(testBaseURL, taxonomy, models.ServiceCatalog, caseStudies, guides)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.URL, "dartford") || strings.Contains(e.URL, "draft-guide"),
			"unpublished record leaked into sitemap: %s", e.URL)
	}
}
