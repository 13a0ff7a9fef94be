package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Spacespixel/ppsasset-new/config"
	"github.com/Spacespixel/ppsasset-new/models"

	"gorm.io/gorm"
)

// ErrMappingNotFound is returned when no active row in project_mapping
// matches the lookup key. Absence is a routine outcome (a dead backlink,
// a project with no legacy history) and must not be treated as an infra
// failure by callers.
var ErrMappingNotFound = errors.New("project mapping not found")

// MappingService resolves between the three project identity spaces:
// canonical slug, legacy marketing URL triple and legacy transactional
// code (e.g. "SG06"). All lookups are pure reads against project_mapping
// and only consider active rows.
type MappingService struct {
	db *gorm.DB
}

func NewMappingService(db *gorm.DB) *MappingService {
	if db == nil {
		db = config.DB
	}
	return &MappingService{db: db}
}

// SlugForLegacyURL resolves the canonical slug for a legacy marketing URL
// triple. Returns ErrMappingNotFound when no active mapping matches; the
// caller decides the fallback policy (the web layer rejects the request
// rather than defaulting to an arbitrary project).
func (s *MappingService) SlugForLegacyURL(u models.LegacyURL) (string, error) {
	if u.IsZero() {
		log.Printf("mapping: SlugForLegacyURL called with incomplete triple %q", u.Key())
		return "", ErrMappingNotFound
	}

	var row mappingSlugRow
	err := s.db.Table("project_mapping").
		Select("project_slug").
		Where("legacy_type = ? AND legacy_name = ? AND legacy_location = ? AND is_active = 1",
			u.Type, u.Name, u.Location).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return "", fmt.Errorf("query project_mapping for legacy url %s: %w", u.Key(), err)
	}
	if row.ProjectSlug == "" {
		return "", ErrMappingNotFound
	}
	return row.ProjectSlug, nil
}

// LegacyURLForSlug resolves the legacy URL triple for a slug, used to emit
// outbound links in the legacy scheme for indexed backlinks.
func (s *MappingService) LegacyURLForSlug(slug string) (models.LegacyURL, error) {
	if strings.TrimSpace(slug) == "" {
		log.Printf("mapping: LegacyURLForSlug called with empty slug")
		return models.LegacyURL{}, ErrMappingNotFound
	}

	var row models.ProjectMapping
	err := s.db.Table("project_mapping").
		Select("legacy_type, legacy_name, legacy_location").
		Where("project_slug = ? AND is_active = 1", slug).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return models.LegacyURL{}, fmt.Errorf("query project_mapping for slug %s: %w", slug, err)
	}
	u := row.LegacyURLOf()
	if u.IsZero() {
		return models.LegacyURL{}, ErrMappingNotFound
	}
	return u, nil
}

// LegacyCodeForSlug resolves the legacy transactional project code for a
// slug. The registration service persists that code verbatim with each
// lead so older reporting systems keyed on it keep working.
func (s *MappingService) LegacyCodeForSlug(slug string) (string, error) {
	if strings.TrimSpace(slug) == "" {
		log.Printf("mapping: LegacyCodeForSlug called with empty slug")
		return "", ErrMappingNotFound
	}

	var row mappingCodeRow
	err := s.db.Table("project_mapping").
		Select("legacy_code").
		Where("project_slug = ? AND is_active = 1", slug).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return "", fmt.Errorf("query project_mapping for slug %s: %w", slug, err)
	}
	if row.LegacyCode == "" {
		return "", ErrMappingNotFound
	}
	return row.LegacyCode, nil
}

// SlugForLegacyCode is the inverse of LegacyCodeForSlug.
func (s *MappingService) SlugForLegacyCode(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		log.Printf("mapping: SlugForLegacyCode called with empty code")
		return "", ErrMappingNotFound
	}

	var row mappingSlugRow
	err := s.db.Table("project_mapping").
		Select("project_slug").
		Where("legacy_code = ? AND is_active = 1", code).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return "", fmt.Errorf("query project_mapping for legacy code %s: %w", code, err)
	}
	if row.ProjectSlug == "" {
		return "", ErrMappingNotFound
	}
	return row.ProjectSlug, nil
}

type mappingSlugRow struct {
	ProjectSlug string `gorm:"column:project_slug"`
}

type mappingCodeRow struct {
	LegacyCode string `gorm:"column:legacy_code"`
}
