package models

import "strings"

// ProjectMapping represents the project_mapping table. It associates a
// canonical slug with the legacy marketing URL triple and the legacy
// transactional project code (e.g. "SG06"). Rows are soft-deactivated via
// is_active instead of being deleted.
type ProjectMapping struct {
	ProjectSlug    string `gorm:"column:project_slug" json:"project_slug"`
	LegacyType     string `gorm:"column:legacy_type" json:"legacy_type"`
	LegacyName     string `gorm:"column:legacy_name" json:"legacy_name"`
	LegacyLocation string `gorm:"column:legacy_location" json:"legacy_location"`
	LegacyCode     string `gorm:"column:legacy_code" json:"legacy_code"`
	IsActive       bool   `gorm:"column:is_active" json:"is_active"`
}

// TableName overrides the table name for ProjectMapping
func (ProjectMapping) TableName() string {
	return "project_mapping"
}

// LegacyURL is the three-segment marketing URL scheme
// (projectType/projectName/location) used by externally indexed pages.
// It is a value type so the triple cannot be threaded through layers as
// three loose strings in the wrong order.
type LegacyURL struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Key returns the triple joined by "/", the form stored in backlinks.
func (u LegacyURL) Key() string {
	return u.Type + "/" + u.Name + "/" + u.Location
}

// IsZero reports whether any segment is missing.
func (u LegacyURL) IsZero() bool {
	return strings.TrimSpace(u.Type) == "" ||
		strings.TrimSpace(u.Name) == "" ||
		strings.TrimSpace(u.Location) == ""
}

// LegacyURLOf builds the value type from the mapping row.
func (m ProjectMapping) LegacyURLOf() LegacyURL {
	return LegacyURL{Type: m.LegacyType, Name: m.LegacyName, Location: m.LegacyLocation}
}
