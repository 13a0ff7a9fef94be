package models

// View models assembled by the project service. These are what the web layer
// renders; row models in project.go stay one-to-one with tables.

// ProjectType is the closed set of project categories.
type ProjectType string

const (
	ProjectTypeSingleHouse ProjectType = "SingleHouse"
	ProjectTypeTownhouse   ProjectType = "Townhouse"
	ProjectTypeTwinHouse   ProjectType = "TwinHouse"
	ProjectTypeCondominium ProjectType = "Condominium"
)

// ParseProjectType parses a stored type string. Unknown values report
// ok=false and fall back to SingleHouse; callers log the warning.
func ParseProjectType(s string) (ProjectType, bool) {
	switch ProjectType(s) {
	case ProjectTypeSingleHouse, ProjectTypeTownhouse, ProjectTypeTwinHouse, ProjectTypeCondominium:
		return ProjectType(s), true
	}
	return ProjectTypeSingleHouse, false
}

// PropertyTypeLabel returns the Thai marketing label for the type.
func (t ProjectType) PropertyTypeLabel() string {
	switch t {
	case ProjectTypeTownhouse:
		return "ทาวน์โฮม 3 ชั้น"
	case ProjectTypeTwinHouse:
		return "บ้านแฝด 2 ชั้น"
	case ProjectTypeCondominium:
		return "คอนโดมิเนียม"
	default:
		return "บ้านเดี่ยว 2 ชั้น"
	}
}

// ProjectStatus is the closed set of sales statuses.
type ProjectStatus string

const (
	ProjectStatusNewProject        ProjectStatus = "NewProject"
	ProjectStatusAvailable         ProjectStatus = "Available"
	ProjectStatusSoldOut           ProjectStatus = "SoldOut"
	ProjectStatusComingSoon        ProjectStatus = "ComingSoon"
	ProjectStatusUnderConstruction ProjectStatus = "UnderConstruction"
	ProjectStatusCompleted         ProjectStatus = "Completed"
)

// ParseProjectStatus parses a stored status string. Unknown values report
// ok=false and fall back to Available.
func ParseProjectStatus(s string) (ProjectStatus, bool) {
	switch ProjectStatus(s) {
	case ProjectStatusNewProject, ProjectStatusAvailable, ProjectStatusSoldOut,
		ProjectStatusComingSoon, ProjectStatusUnderConstruction, ProjectStatusCompleted:
		return ProjectStatus(s), true
	}
	return ProjectStatusAvailable, false
}

// FloorType classifies floor plan images.
type FloorType string

const (
	FloorTypeFacade      FloorType = "Facade"
	FloorTypeGroundFloor FloorType = "GroundFloor"
	FloorTypeSecondFloor FloorType = "SecondFloor"
	FloorTypeThirdFloor  FloorType = "ThirdFloor"
	FloorTypeRoof        FloorType = "Roof"
	FloorTypeSitePlan    FloorType = "SitePlan"
)

// ParseFloorType parses a stored floor type string. Unknown values report
// ok=false and fall back to Facade (cosmetic field, never fatal).
func ParseFloorType(s string) (FloorType, bool) {
	switch FloorType(s) {
	case FloorTypeFacade, FloorTypeGroundFloor, FloorTypeSecondFloor,
		FloorTypeThirdFloor, FloorTypeRoof, FloorTypeSitePlan:
		return FloorType(s), true
	}
	return FloorTypeFacade, false
}

// FacilityCategory groups project facilities.
type FacilityCategory string

const (
	FacilityCategoryRecreation  FacilityCategory = "Recreation"
	FacilityCategorySecurity    FacilityCategory = "Security"
	FacilityCategoryParking     FacilityCategory = "Parking"
	FacilityCategoryLandscaping FacilityCategory = "Landscaping"
	FacilityCategoryFitness     FacilityCategory = "Fitness"
	FacilityCategoryCommunity   FacilityCategory = "Community"
	FacilityCategoryUtilities   FacilityCategory = "Utilities"
)

// ParseFacilityCategory parses a stored category string. Unknown values
// report ok=false and fall back to Recreation.
func ParseFacilityCategory(s string) (FacilityCategory, bool) {
	switch FacilityCategory(s) {
	case FacilityCategoryRecreation, FacilityCategorySecurity, FacilityCategoryParking,
		FacilityCategoryLandscaping, FacilityCategoryFitness, FacilityCategoryCommunity,
		FacilityCategoryUtilities:
		return FacilityCategory(s), true
	}
	return FacilityCategoryRecreation, false
}

// Image type strings stored in project_image.image_type.
const (
	ImageTypeHero        = "Hero"
	ImageTypeLogo        = "Logo"
	ImageTypeThumbnail   = "Thumbnail"
	ImageTypeMasterPlan  = "MasterPlan"
	ImageTypeFacility    = "Facility"
	ImageTypeGallery     = "Gallery"
	ImageTypeLocationMap = "LocationMap"
)

// ProjectView is the fully assembled project aggregate.
type ProjectView struct {
	Slug            string           `json:"slug"`
	Name            string           `json:"name"`
	NameTH          string           `json:"name_th"`
	NameEN          string           `json:"name_en"`
	Subtitle        string           `json:"subtitle"`
	Description     string           `json:"description"`
	Concept         string           `json:"concept"`
	Type            ProjectType      `json:"type"`
	Status          ProjectStatus    `json:"status"`
	SortOrder       int              `json:"sort_order"`
	Details         ProjectDetails   `json:"details"`
	Images          ProjectImages    `json:"images"`
	HouseTypes      []HouseTypeView  `json:"house_types"`
	Facilities      []FacilityView   `json:"facilities"`
	ConceptFeatures []ConceptFeature `json:"concept_features"`
	Location        LocationView     `json:"location"`
	Contact         ContactView      `json:"contact"`
}

// ProjectDetails carries the header fields rendered in the detail table.
type ProjectDetails struct {
	Address      string `json:"address"`
	ProjectSize  string `json:"project_size"`
	PropertyType string `json:"property_type"`
	TotalUnits   int    `json:"total_units"`
	LandSize     string `json:"land_size"`
	UsableArea   string `json:"usable_area"`
	PriceRange   string `json:"price_range"`
	Developer    string `json:"developer"`
}

// ProjectImages buckets image rows by type. Gallery keeps persisted
// sort_order; the single-slot fields keep the last row of their type.
type ProjectImages struct {
	Hero         string   `json:"hero"`
	Logo         string   `json:"logo"`
	Thumbnail    string   `json:"thumbnail"`
	MasterPlan   string   `json:"master_plan"`
	FacilityMain string   `json:"facility_main"`
	LocationMap  string   `json:"location_map"`
	Gallery      []string `json:"gallery"`
}

// HouseTypeView is one house type with its ordered floor plans.
type HouseTypeView struct {
	HouseTypeID int             `json:"house_type_id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
	Description string          `json:"description"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	Parking     int             `json:"parking"`
	LandSize    string          `json:"land_size"`
	UsableArea  string          `json:"usable_area"`
	FloorPlans  []FloorPlanView `json:"floor_plans"`
}

// FloorPlanView is one floor plan image of a house type.
type FloorPlanView struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	ImagePath string    `json:"image_path"`
	Type      FloorType `json:"type"`
}

// FacilityView is one project facility.
type FacilityView struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Category    FacilityCategory `json:"category"`
}

// ConceptFeature is one concept display block, paired with a gallery image.
type ConceptFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// LocationView is the project location with ordered nearby places.
type LocationView struct {
	District     string            `json:"district"`
	Province     string            `json:"province"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	NearbyPlaces []NearbyPlaceView `json:"nearby_places"`
}

// NearbyPlaceView is one nearby point of interest.
type NearbyPlaceView struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Distance   string `json:"distance"`
	TravelTime string `json:"travel_time"`
}

// ContactView is the sales contact block.
type ContactView struct {
	Phone    string      `json:"phone"`
	Email    string      `json:"email"`
	LineID   string      `json:"line_id"`
	Facebook string      `json:"facebook"`
	Hours    OfficeHours `json:"hours"`
}

// OfficeHours is the office-hours triple shown on the contact block.
type OfficeHours struct {
	Weekdays string `json:"weekdays"`
	Weekends string `json:"weekends"`
	Holidays string `json:"holidays"`
}
