package services

import (
	"errors"
	"fmt"

	"propfinance_app_go/models"

	"gorm.io/gorm"
)

// DefaultFeaturedCaseStudies is the homepage carousel size
const DefaultFeaturedCaseStudies = 3

// CaseStudyService provides reads over published deal write-ups
type CaseStudyService struct {
	db *gorm.DB
}

// NewCaseStudyService creates a new case study service instance
func NewCaseStudyService(db *gorm.DB) *CaseStudyService {
	return &CaseStudyService{db: db}
}

// GetFeatured returns up to limit featured case studies
func (s *CaseStudyService) GetFeatured(limit int) ([]models.CaseStudy, error) {
	if limit <= 0 {
		limit = DefaultFeaturedCaseStudies
	}
	var studies []models.CaseStudy
	err := s.db.Where("is_featured = ?", true).Limit(limit).Find(&studies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured case studies: %w", err)
	}
	return studies, nil
}

// GetAll returns all case studies, most recent first
func (s *CaseStudyService) GetAll() ([]models.CaseStudy, error) {
	var studies []models.CaseStudy
	if err := s.db.Order("created_at DESC").Find(&studies).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch case studies: %w", err)
	}
	return studies, nil
}

// GetBySlug returns the case study with the given slug, or nil if none exists
func (s *CaseStudyService) GetBySlug(slug string) (*models.CaseStudy, error) {
	var study models.CaseStudy
	err := s.db.Where("slug = ?", slug).First(&study).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch case study %q: %w", slug, err)
	}
	return &study, nil
}
