package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"propfinance_app_go/models"

	"github.com/microcosm-cc/bluemonday"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Workbook sheet names expected from the content-generation pipeline
const (
	SheetCounties = "Counties"
	SheetTowns    = "Towns"
	SheetServices = "Services"
)

// ugcPolicy allows basic formatting in generated market commentary
var ugcPolicy = bluemonday.UGCPolicy()

// ImportResult contains the summary of the import process
type ImportResult struct {
	CountiesCreated int
	TownsCreated    int
	ServicesCreated int
	SkippedCount    int
	FailedCount     int
	Errors          []string
}

// ImportTaxonomyWorkbook loads a content workbook produced by the offline
// generation pipeline. Rows whose natural key already exists are skipped,
// so re-running an import is safe. The pass finishes by recomputing every
// county's denormalized town count; that recomputation is the only thing
// that ever refreshes the cache.
func ImportTaxonomyWorkbook(db *gorm.DB, path string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	result := &ImportResult{}

	if err := importCounties(db, f, result); err != nil {
		return nil, err
	}
	if err := importTowns(db, f, result); err != nil {
		return nil, err
	}
	if err := importLocationServices(db, f, result); err != nil {
		return nil, err
	}

	if err := RecomputeTownCounts(db); err != nil {
		return nil, err
	}

	log.Printf("Taxonomy import completed: %d counties, %d towns, %d services (%d skipped, %d failed)",
		result.CountiesCreated, result.TownsCreated, result.ServicesCreated, result.SkippedCount, result.FailedCount)
	return result, nil
}

func importCounties(db *gorm.DB, f *excelize.File, result *ImportResult) error {
	rows, err := f.GetRows(SheetCounties)
	if err != nil {
		return fmt.Errorf("failed to read %s sheet: %w", SheetCounties, err)
	}

	// Columns: Name | Slug | Region | Description | MetaTitle | MetaDescription
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if cell(row, 1) == "" {
			continue
		}

		slug := cell(row, 1)
		var existing models.County
		if err := db.Where("slug = ?", slug).First(&existing).Error; err == nil {
			result.SkippedCount++
			continue
		}

		county := models.County{
			Name:            cell(row, 0),
			Slug:            slug,
			Region:          cell(row, 2),
			Description:     ugcPolicy.Sanitize(cell(row, 3)),
			MetaTitle:       cell(row, 4),
			MetaDescription: cell(row, 5),
		}
		if err := db.Create(&county).Error; err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("county row %d (%s): %v", i+1, slug, err))
			continue
		}
		result.CountiesCreated++
	}
	return nil
}

func importTowns(db *gorm.DB, f *excelize.File, result *ImportResult) error {
	rows, err := f.GetRows(SheetTowns)
	if err != nil {
		return fmt.Errorf("failed to read %s sheet: %w", SheetTowns, err)
	}

	// Columns: County | CountySlug | Town | TownSlug | Region | Population |
	//          Latitude | Longitude | PlanningLink | Published | Priority
	for i, row := range rows {
		if i == 0 {
			continue
		}
		countySlug, townSlug := cell(row, 1), cell(row, 3)
		if countySlug == "" || townSlug == "" {
			continue
		}

		var existing models.Town
		if err := db.Where("county_slug = ? AND town_slug = ?", countySlug, townSlug).First(&existing).Error; err == nil {
			result.SkippedCount++
			continue
		}

		town := models.Town{
			County:      cell(row, 0),
			CountySlug:  countySlug,
			Town:        cell(row, 2),
			TownSlug:    townSlug,
			Region:      cell(row, 4),
			IsPublished: parseBool(cell(row, 9)),
		}
		if v, err := strconv.Atoi(cell(row, 5)); err == nil {
			town.Population = &v
		}
		if v, err := strconv.ParseFloat(cell(row, 6), 64); err == nil {
			town.Latitude = &v
		}
		if v, err := strconv.ParseFloat(cell(row, 7), 64); err == nil {
			town.Longitude = &v
		}
		if link := cell(row, 8); link != "" {
			town.LocalPlanningLink = &link
		}
		if v, err := strconv.Atoi(cell(row, 10)); err == nil {
			town.Priority = &v
		}

		if err := db.Create(&town).Error; err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("town row %d (%s/%s): %v", i+1, countySlug, townSlug, err))
			continue
		}
		result.TownsCreated++
	}
	return nil
}

func importLocationServices(db *gorm.DB, f *excelize.File, result *ImportResult) error {
	rows, err := f.GetRows(SheetServices)
	if err != nil {
		// The services sheet is optional: early workbooks only carried geography
		log.Printf("No %s sheet in workbook, skipping location services", SheetServices)
		return nil
	}

	now := time.Now().UTC()

	// Columns: CountySlug | TownSlug | ServiceSlug | County | Town |
	//          MarketCommentary | MetaTitle | MetaDescription | Published
	for i, row := range rows {
		if i == 0 {
			continue
		}
		countySlug, townSlug, serviceSlug := cell(row, 0), cell(row, 1), cell(row, 2)
		if countySlug == "" || townSlug == "" || serviceSlug == "" {
			continue
		}

		def, ok := models.ServiceBySlug(serviceSlug)
		if !ok {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("service row %d: unknown service %q", i+1, serviceSlug))
			continue
		}

		var existing models.LocationService
		if err := db.Where("county_slug = ? AND town_slug = ? AND service_slug = ?",
			countySlug, townSlug, serviceSlug).First(&existing).Error; err == nil {
			result.SkippedCount++
			continue
		}

		svc := models.LocationService{
			CountySlug:         countySlug,
			TownSlug:           townSlug,
			ServiceSlug:        serviceSlug,
			County:             cell(row, 3),
			Town:               cell(row, 4),
			ServiceName:        def.Name,
			MarketCommentary:   ugcPolicy.Sanitize(cell(row, 5)),
			MetaTitle:          cell(row, 6),
			MetaDescription:    cell(row, 7),
			IsPublished:        parseBool(cell(row, 8)),
			ContentGeneratedAt: &now,
		}
		if err := db.Create(&svc).Error; err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("service row %d (%s/%s/%s): %v", i+1, countySlug, townSlug, serviceSlug, err))
			continue
		}
		result.ServicesCreated++
	}
	return nil
}

// RecomputeTownCounts refreshes the denormalized town_count cache on every
// county from the towns actually present.
func RecomputeTownCounts(db *gorm.DB) error {
	var counties []models.County
	if err := db.Find(&counties).Error; err != nil {
		return fmt.Errorf("failed to fetch counties for recount: %w", err)
	}

	for _, county := range counties {
		var count int64
		if err := db.Model(&models.Town{}).Where("county_slug = ?", county.Slug).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count towns for %q: %w", county.Slug, err)
		}
		if int(count) != county.TownCount {
			if err := db.Model(&models.County{}).Where("id = ?", county.ID).Update("town_count", count).Error; err != nil {
				return fmt.Errorf("failed to update town count for %q: %w", county.Slug, err)
			}
		}
	}
	return nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
