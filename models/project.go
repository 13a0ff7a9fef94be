package models

import "time"

// Project represents the project table. One row per marketing project,
// keyed by the canonical slug (e.g. "ricco-residence-hathairat").
type Project struct {
	Slug           string    `gorm:"primaryKey;column:slug" json:"slug"`
	NameTH         string    `gorm:"column:name_th" json:"name_th"`
	NameEN         string    `gorm:"column:name_en" json:"name_en"`
	Subtitle       string    `gorm:"column:subtitle" json:"subtitle"`
	Description    string    `gorm:"column:description" json:"description"`
	Concept        string    `gorm:"column:concept" json:"concept"`
	Type           string    `gorm:"column:type" json:"type"`
	Status         string    `gorm:"column:status" json:"status"`
	SortOrder      int       `gorm:"column:sort_order" json:"sort_order"`
	Address        string    `gorm:"column:address" json:"address"`
	SizeText       string    `gorm:"column:size_text" json:"size_text"`
	TotalUnits     int       `gorm:"column:total_units" json:"total_units"`
	LandSizeText   string    `gorm:"column:land_size_text" json:"land_size_text"`
	UsableAreaText string    `gorm:"column:usable_area_text" json:"usable_area_text"`
	Developer      string    `gorm:"column:developer" json:"developer"`
	PriceRange     string    `gorm:"column:price_range" json:"price_range"`
	ModifiedAt     time.Time `gorm:"column:modified_at" json:"modified_at"`
}

// TableName overrides the table name for Project
func (Project) TableName() string {
	return "project"
}

// ProjectImage represents the project_image table
type ProjectImage struct {
	ProjectSlug string `gorm:"column:project_slug" json:"project_slug"`
	ImageType   string `gorm:"column:image_type" json:"image_type"`
	ImagePath   string `gorm:"column:image_path" json:"image_path"`
	SortOrder   int    `gorm:"column:sort_order" json:"sort_order"`
}

// TableName overrides the table name for ProjectImage
func (ProjectImage) TableName() string {
	return "project_image"
}

// ProjectHouseType represents the project_house_type table
type ProjectHouseType struct {
	HouseTypeID    int    `gorm:"primaryKey;column:house_type_id" json:"house_type_id"`
	ProjectSlug    string `gorm:"column:project_slug" json:"project_slug"`
	Code           string `gorm:"column:code" json:"code"`
	Name           string `gorm:"column:name" json:"name"`
	DisplayName    string `gorm:"column:display_name" json:"display_name"`
	Description    string `gorm:"column:description" json:"description"`
	Bedrooms       int    `gorm:"column:bedrooms" json:"bedrooms"`
	Bathrooms      int    `gorm:"column:bathrooms" json:"bathrooms"`
	Parking        int    `gorm:"column:parking" json:"parking"`
	LandSizeText   string `gorm:"column:land_size_text" json:"land_size_text"`
	UsableAreaText string `gorm:"column:usable_area_text" json:"usable_area_text"`
}

// TableName overrides the table name for ProjectHouseType
func (ProjectHouseType) TableName() string {
	return "project_house_type"
}

// ProjectFloorPlan represents the project_floor_plan table
type ProjectFloorPlan struct {
	HouseTypeID int    `gorm:"column:house_type_id" json:"house_type_id"`
	Code        string `gorm:"column:code" json:"code"`
	Name        string `gorm:"column:name" json:"name"`
	ImagePath   string `gorm:"column:image_path" json:"image_path"`
	FloorType   string `gorm:"column:floor_type" json:"floor_type"`
	SortOrder   int    `gorm:"column:sort_order" json:"sort_order"`
}

// TableName overrides the table name for ProjectFloorPlan
func (ProjectFloorPlan) TableName() string {
	return "project_floor_plan"
}

// ProjectFacility represents the project_facility table
type ProjectFacility struct {
	ProjectSlug string `gorm:"column:project_slug" json:"project_slug"`
	Code        string `gorm:"column:code" json:"code"`
	Name        string `gorm:"column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	Icon        string `gorm:"column:icon" json:"icon"`
	Category    string `gorm:"column:category" json:"category"`
}

// TableName overrides the table name for ProjectFacility
func (ProjectFacility) TableName() string {
	return "project_facility"
}

// ProjectFeature represents the project_feature table
type ProjectFeature struct {
	ProjectSlug string `gorm:"column:project_slug" json:"project_slug"`
	Title       string `gorm:"column:title" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	SortOrder   int    `gorm:"column:sort_order" json:"sort_order"`
}

// TableName overrides the table name for ProjectFeature
func (ProjectFeature) TableName() string {
	return "project_feature"
}

// ProjectLocation represents the project_location table
type ProjectLocation struct {
	LocationID  int     `gorm:"primaryKey;column:location_id" json:"location_id"`
	ProjectSlug string  `gorm:"column:project_slug" json:"project_slug"`
	District    string  `gorm:"column:district" json:"district"`
	Province    string  `gorm:"column:province" json:"province"`
	Latitude    float64 `gorm:"column:latitude" json:"latitude"`
	Longitude   float64 `gorm:"column:longitude" json:"longitude"`
}

// TableName overrides the table name for ProjectLocation
func (ProjectLocation) TableName() string {
	return "project_location"
}

// ProjectNearbyPlace represents the project_nearby_place table
type ProjectNearbyPlace struct {
	LocationID int    `gorm:"column:location_id" json:"location_id"`
	Name       string `gorm:"column:name" json:"name"`
	Category   string `gorm:"column:category" json:"category"`
	Distance   string `gorm:"column:distance" json:"distance"`
	TravelTime string `gorm:"column:travel_time" json:"travel_time"`
	SortOrder  int    `gorm:"column:sort_order" json:"sort_order"`
}

// TableName overrides the table name for ProjectNearbyPlace
func (ProjectNearbyPlace) TableName() string {
	return "project_nearby_place"
}

// ProjectContact represents the project_contact table
type ProjectContact struct {
	ProjectSlug  string `gorm:"column:project_slug" json:"project_slug"`
	Phone        string `gorm:"column:phone" json:"phone"`
	LineID       string `gorm:"column:line_id" json:"line_id"`
	Facebook     string `gorm:"column:facebook" json:"facebook"`
	HoursWeekday string `gorm:"column:hours_weekday" json:"hours_weekday"`
	HoursWeekend string `gorm:"column:hours_weekend" json:"hours_weekend"`
	HoursHoliday string `gorm:"column:hours_holiday" json:"hours_holiday"`
}

// TableName overrides the table name for ProjectContact
func (ProjectContact) TableName() string {
	return "project_contact"
}

// ProjectStatusHistory represents the project_status_history table
type ProjectStatusHistory struct {
	HistoryID   int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	ProjectSlug string    `gorm:"column:project_slug" json:"project_slug"`
	OldStatus   string    `gorm:"column:old_status" json:"old_status"`
	NewStatus   string    `gorm:"column:new_status" json:"new_status"`
	ChangedBy   string    `gorm:"column:changed_by" json:"changed_by"`
	Reason      string    `gorm:"column:reason" json:"reason"`
	ChangedAt   time.Time `gorm:"column:changed_at" json:"changed_at"`
}

// TableName overrides the table name for ProjectStatusHistory
func (ProjectStatusHistory) TableName() string {
	return "project_status_history"
}
