package handlers

import (
	"fmt"
	"net/http"

	"propfinance_app_go/db"
	"propfinance_app_go/models"
	"propfinance_app_go/services"

	"github.com/labstack/echo/v4"
)

const (
	siteBaseURL    = "https://oakbridgecapital.co.uk"
	defaultOGImage = "https://oakbridgecapital.co.uk/static/images/og-image.png"
)

// SEO configurations for the fixed site sections
var pageSEO = map[string]*models.SEO{
	"landing": {
		Title:       "Oakbridge Capital - Development Finance & Bridging Loans Across the UK",
		Description: "Oakbridge Capital arranges development finance, bridging loans and commercial mortgages for property professionals in every UK county. Rates from leading lenders, terms in 24 hours.",
		Keywords:    "development finance, bridging loans, property finance broker, commercial mortgages, UK property funding",
		Canonical:   siteBaseURL + "/",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"about": {
		Title:       "About Us | Oakbridge Capital",
		Description: "Meet the team behind Oakbridge Capital. We pair property developers and investors with the right lender for every project, from first bridge to major scheme.",
		Keywords:    "about Oakbridge Capital, property finance broker, development finance specialists",
		Canonical:   siteBaseURL + "/about",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"contact": {
		Title:       "Contact Us | Oakbridge Capital",
		Description: "Speak to a development finance specialist today. Call, email or use our enquiry form for indicative terms within one working day.",
		Keywords:    "contact Oakbridge Capital, development finance enquiry, bridging loan quote",
		Canonical:   siteBaseURL + "/contact",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"services": {
		Title:       "Property Finance Products | Oakbridge Capital",
		Description: "Development finance, bridging loans, mezzanine, auction finance, refurbishment loans, commercial mortgages and land loans - whole-of-market access in one place.",
		Keywords:    "development finance products, bridging loan rates, mezzanine finance, auction finance",
		Canonical:   siteBaseURL + "/services",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"case-studies": {
		Title:       "Case Studies | Oakbridge Capital",
		Description: "Recent deals we have funded: new-build schemes, conversions, auction purchases and refinances across the UK.",
		Keywords:    "property finance case studies, development finance deals",
		Canonical:   siteBaseURL + "/case-studies",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"guides": {
		Title:       "Property Finance Guides | Oakbridge Capital",
		Description: "Plain-English guides to development finance, bridging loans, loan-to-GDV, exit strategies and everything else a borrower should know.",
		Keywords:    "development finance guide, bridging loan guide, LTGDV explained",
		Canonical:   siteBaseURL + "/guides",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary",
	},
	"privacy": {
		Title:       "Privacy Policy | Oakbridge Capital",
		Description: "Read Oakbridge Capital's privacy policy. Learn how we collect, use, and protect your personal information.",
		Keywords:    "privacy policy, data protection, personal information",
		Canonical:   siteBaseURL + "/privacy",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary",
	},
	"terms": {
		Title:       "Terms of Use | Oakbridge Capital",
		Description: "The terms and conditions governing use of the Oakbridge Capital website and services.",
		Keywords:    "terms of use, legal terms",
		Canonical:   siteBaseURL + "/terms",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary",
	},
	// Post-enquiry confirmation; kept out of the index so it never outranks
	// the enquiry form itself
	"thank-you": models.DefaultSEO(
		"Thank You | Oakbridge Capital",
		"Your enquiry has been received. A development finance specialist will be in touch within one working day.").
		WithCanonical(siteBaseURL + "/thank-you").
		WithOGImage(defaultOGImage).
		WithNoIndex(),
}

// GetSEO returns the SEO configuration for a page
func GetSEO(page string) *models.SEO {
	if seo, ok := pageSEO[page]; ok {
		// Return a copy to avoid mutations
		copy := *seo
		return &copy
	}
	return nil
}

// seoResponse is the wire shape for page metadata. The OG fields are resolved
// through their fallbacks so the rendering layer never repeats that logic.
type seoResponse struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Keywords      string `json:"keywords,omitempty"`
	Canonical     string `json:"canonical"`
	OGTitle       string `json:"og_title"`
	OGDescription string `json:"og_description"`
	OGImage       string `json:"og_image"`
	OGType        string `json:"og_type"`
	TwitterCard   string `json:"twitter_card"`
	NoIndex       bool   `json:"no_index"`
}

func toSEOResponse(s *models.SEO) seoResponse {
	return seoResponse{
		Title:         s.Title,
		Description:   s.Description,
		Keywords:      s.Keywords,
		Canonical:     s.Canonical,
		OGTitle:       s.GetOGTitle(),
		OGDescription: s.GetOGDesc(),
		OGImage:       s.OGImage,
		OGType:        s.OGType,
		TwitterCard:   s.TwitterCard,
		NoIndex:       s.NoIndex,
	}
}

// GetPageSEOHandler exposes static page metadata to the rendering layer
func GetPageSEOHandler(c echo.Context) error {
	seo := GetSEO(c.Param("page"))
	if seo == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown page")
	}
	return c.JSON(http.StatusOK, toSEOResponse(seo))
}

// countySEO builds metadata for a county hub page. Authored meta fields win;
// generated copy fills the gaps.
func countySEO(county *models.County) *models.SEO {
	title := county.MetaTitle
	if title == "" {
		title = fmt.Sprintf("Development Finance & Bridging Loans in %s | Oakbridge Capital", county.Name)
	}
	description := county.MetaDescription
	if description == "" {
		description = fmt.Sprintf("Property finance across %s: development finance, bridging loans and commercial mortgages arranged for every town in the county.", county.Name)
	}
	return models.DefaultSEO(title, description).
		WithCanonical(fmt.Sprintf("%s/%s", siteBaseURL, county.Slug)).
		WithOGImage(defaultOGImage)
}

func townSEO(town *models.Town) *models.SEO {
	title := fmt.Sprintf("Development Finance in %s, %s | Oakbridge Capital", town.Town, town.County)
	description := fmt.Sprintf("Funding for property projects in %s: development finance, bridging loans and more, arranged by specialists who know the %s market.", town.Town, town.County)
	return models.DefaultSEO(title, description).
		WithCanonical(fmt.Sprintf("%s/%s/%s", siteBaseURL, town.CountySlug, town.TownSlug)).
		WithOGImage(defaultOGImage)
}

func locationServiceSEO(record *models.LocationService) *models.SEO {
	title := record.MetaTitle
	if title == "" {
		title = fmt.Sprintf("%s in %s | Oakbridge Capital", record.ServiceName, record.Town)
	}
	description := record.MetaDescription
	if description == "" {
		description = fmt.Sprintf("%s for property professionals in %s, %s. Indicative terms within one working day.", record.ServiceName, record.Town, record.County)
	}
	return models.DefaultSEO(title, description).
		WithCanonical(fmt.Sprintf("%s/%s/%s/%s", siteBaseURL, record.CountySlug, record.TownSlug, record.ServiceSlug)).
		WithOGImage(defaultOGImage)
}

// GetCountySEOHandler returns metadata for a county hub page
func GetCountySEOHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	county, err := svc.GetCountyBySlug(c.Param("countySlug"))
	if err != nil {
		c.Logger().Error("Failed to fetch county for SEO: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build metadata")
	}
	if county == nil {
		return echo.NewHTTPError(http.StatusNotFound, "County not found")
	}
	return c.JSON(http.StatusOK, toSEOResponse(countySEO(county)))
}

// GetTownSEOHandler returns metadata for a town page
func GetTownSEOHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	town, err := svc.GetTownBySlug(c.Param("countySlug"), c.Param("townSlug"))
	if err != nil {
		c.Logger().Error("Failed to fetch town for SEO: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build metadata")
	}
	if town == nil || !town.IsPublished {
		return echo.NewHTTPError(http.StatusNotFound, "Town not found")
	}
	return c.JSON(http.StatusOK, toSEOResponse(townSEO(town)))
}

// GetLocationServiceSEOHandler returns metadata for a service page
func GetLocationServiceSEOHandler(c echo.Context) error {
	svc := services.NewTaxonomyService(db.DB)

	record, err := svc.GetLocationService(
		c.Param("countySlug"), c.Param("townSlug"), c.Param("serviceSlug"))
	if err != nil {
		c.Logger().Error("Failed to fetch location service for SEO: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build metadata")
	}
	if record == nil || !record.IsPublished {
		return echo.NewHTTPError(http.StatusNotFound, "Service page not found")
	}
	return c.JSON(http.StatusOK, toSEOResponse(locationServiceSEO(record)))
}
