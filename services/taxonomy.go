package services

import (
	"errors"
	"fmt"
	"strings"

	"propfinance_app_go/models"

	"gorm.io/gorm"
)

// Query caps. Search is deliberately tight: it backs a typeahead widget.
const (
	DefaultTopTownsLimit     = 200
	DefaultRelatedTownsLimit = 6
	MaxSearchResults         = 10
)

// TaxonomyService provides index-backed reads over the location/service
// content taxonomy. A missing record is a normal outcome, not an error:
// single-record lookups return (nil, nil) when there is no match.
type TaxonomyService struct {
	db *gorm.DB
}

// NewTaxonomyService creates a new taxonomy service instance
func NewTaxonomyService(db *gorm.DB) *TaxonomyService {
	return &TaxonomyService{db: db}
}

// GetCountyBySlug returns the county with the given slug, or nil if none exists
func (s *TaxonomyService) GetCountyBySlug(slug string) (*models.County, error) {
	var county models.County
	err := s.db.Where("slug = ?", slug).First(&county).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch county %q: %w", slug, err)
	}
	return &county, nil
}

// GetAllCounties returns every county in insertion order
func (s *TaxonomyService) GetAllCounties() ([]models.County, error) {
	var counties []models.County
	if err := s.db.Order("created_at").Find(&counties).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch counties: %w", err)
	}
	return counties, nil
}

// GetCountiesByRegion returns counties in a region, index order
func (s *TaxonomyService) GetCountiesByRegion(region string) ([]models.County, error) {
	var counties []models.County
	if err := s.db.Where("region = ?", region).Find(&counties).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch counties for region %q: %w", region, err)
	}
	return counties, nil
}

// GetTownBySlug returns the town with the given compound key, or nil if none exists
func (s *TaxonomyService) GetTownBySlug(countySlug, townSlug string) (*models.Town, error) {
	var town models.Town
	err := s.db.Where("county_slug = ? AND town_slug = ?", countySlug, townSlug).First(&town).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch town %s/%s: %w", countySlug, townSlug, err)
	}
	return &town, nil
}

// GetTownsByCounty returns the published towns of a county
func (s *TaxonomyService) GetTownsByCounty(countySlug string) ([]models.Town, error) {
	var towns []models.Town
	if err := s.db.Where("county_slug = ? AND is_published = ?", countySlug, true).Find(&towns).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch towns for county %q: %w", countySlug, err)
	}
	return towns, nil
}

// GetTopTownsByPriority returns up to limit published towns ordered by
// priority descending. Towns with no priority sort last. This backs public
// hub pages, so the unpublished partition is excluded.
func (s *TaxonomyService) GetTopTownsByPriority(limit int) ([]models.Town, error) {
	if limit <= 0 {
		limit = DefaultTopTownsLimit
	}
	var towns []models.Town
	err := s.db.Where("is_published = ?", true).
		Order("priority IS NULL, priority DESC").
		Limit(limit).
		Find(&towns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top towns: %w", err)
	}
	return towns, nil
}

// GetAllPublishedTowns returns every published town
func (s *TaxonomyService) GetAllPublishedTowns() ([]models.Town, error) {
	var towns []models.Town
	if err := s.db.Where("is_published = ?", true).Find(&towns).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch published towns: %w", err)
	}
	return towns, nil
}

// likeEscaper neutralizes LIKE metacharacters so a search term always matches
// as a literal substring
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchTowns performs a case-insensitive substring match on town names over
// the published set only. The unpublished partition is never scanned.
func (s *TaxonomyService) SearchTowns(term string) ([]models.TownSearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.TownSearchResult{}, nil
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

	var results []models.TownSearchResult
	err := s.db.Model(&models.Town{}).
		Select("town, town_slug, county, county_slug, region").
		Where("is_published = ?", true).
		Where(`LOWER(town) LIKE ? ESCAPE '\'`, pattern).
		Limit(MaxSearchResults).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("town search failed: %w", err)
	}
	return results, nil
}

// GetRelatedTowns returns up to limit published towns in the same county,
// excluding the town the caller is currently rendering.
func (s *TaxonomyService) GetRelatedTowns(countySlug, excludeTownSlug string, limit int) ([]models.Town, error) {
	if limit <= 0 {
		limit = DefaultRelatedTownsLimit
	}
	var towns []models.Town
	err := s.db.Where("county_slug = ? AND is_published = ?", countySlug, true).
		Where("town_slug != ?", excludeTownSlug).
		Limit(limit).
		Find(&towns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch related towns for %q: %w", countySlug, err)
	}
	return towns, nil
}

// GetLocationService returns the service page content for a compound key,
// or nil if none exists
func (s *TaxonomyService) GetLocationService(countySlug, townSlug, serviceSlug string) (*models.LocationService, error) {
	var svc models.LocationService
	err := s.db.Where("county_slug = ? AND town_slug = ? AND service_slug = ?",
		countySlug, townSlug, serviceSlug).First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch location service %s/%s/%s: %w",
			countySlug, townSlug, serviceSlug, err)
	}
	return &svc, nil
}

// GetLocationServices returns the published service pages for one town
func (s *TaxonomyService) GetLocationServices(countySlug, townSlug string) ([]models.LocationService, error) {
	var svcs []models.LocationService
	err := s.db.Where("county_slug = ? AND town_slug = ? AND is_published = ?",
		countySlug, townSlug, true).Find(&svcs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch location services for %s/%s: %w", countySlug, townSlug, err)
	}
	return svcs, nil
}

// GetAllPublishedLocationServices returns every published service page
func (s *TaxonomyService) GetAllPublishedLocationServices() ([]models.LocationService, error) {
	var svcs []models.LocationService
	if err := s.db.Where("is_published = ?", true).Find(&svcs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch published location services: %w", err)
	}
	return svcs, nil
}
