package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Spacespixel/ppsasset-new/config"
	"github.com/Spacespixel/ppsasset-new/models"
	"github.com/Spacespixel/ppsasset-new/utils"

	"gorm.io/gorm"
)

// ErrProjectNotFound is returned when the requested slug has no row in the
// project table. Absence is routine (bad inbound link) and is never an
// exceptional condition.
var ErrProjectNotFound = errors.New("project not found")

// ProjectService assembles project aggregates from the normalized tables.
// Detail pages use GetBySlug (full aggregate); list views use the summary
// methods, which load only the header plus Thumbnail/Hero/Logo images to
// avoid the N+1 cascade of house-type/floor-plan/facility queries for data
// that list views never render.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	if db == nil {
		db = config.DB
	}
	return &ProjectService{db: db}
}

// GetBySlug loads the full aggregate for one project. The header row is
// fetched first; if it is absent the call returns ErrProjectNotFound
// without touching the child tables. Child tables may legitimately be
// empty, but a query failure on any of them fails the whole call so a
// partially assembled aggregate is never returned.
func (s *ProjectService) GetBySlug(slug string) (*models.ProjectView, error) {
	var row models.Project
	if err := s.db.Where("slug = ?", slug).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("query project %s: %w", slug, err)
	}

	view := mapProjectRow(row)

	images, err := s.loadImages(slug)
	if err != nil {
		return nil, err
	}
	view.Images = images

	houseTypes, err := s.loadHouseTypes(slug)
	if err != nil {
		return nil, err
	}
	view.HouseTypes = houseTypes

	facilities, err := s.loadFacilities(slug)
	if err != nil {
		return nil, err
	}
	view.Facilities = facilities

	features, err := s.loadFeatures(slug)
	if err != nil {
		return nil, err
	}
	if len(features) == 0 {
		features = DeriveConceptFeatures(view.Concept, view.Images.Gallery)
	}
	view.ConceptFeatures = features

	location, err := s.loadLocation(slug)
	if err != nil {
		return nil, err
	}
	view.Location = location

	contact, err := s.loadContact(slug)
	if err != nil {
		return nil, err
	}
	view.Contact = contact

	return &view, nil
}

// GetAll returns summaries for every project, ordered by the persisted
// sort order with most-recently-modified first as tiebreak.
func (s *ProjectService) GetAll() ([]models.ProjectView, error) {
	return s.listSummaries(s.db.Model(&models.Project{}))
}

// GetByType returns summaries for projects of one type.
func (s *ProjectService) GetByType(t models.ProjectType) ([]models.ProjectView, error) {
	return s.listSummaries(s.db.Model(&models.Project{}).Where("type = ?", string(t)))
}

// GetAvailable returns summaries for projects open for sale
// (status NewProject or Available).
func (s *ProjectService) GetAvailable() ([]models.ProjectView, error) {
	return s.listSummaries(s.db.Model(&models.Project{}).
		Where("status IN ?", []string{string(models.ProjectStatusNewProject), string(models.ProjectStatusAvailable)}))
}

// UpdateStatus changes a project's status and appends an audit row. The
// history insert is advisory: its failure is logged but does not undo the
// status change (single-statement mutation policy).
func (s *ProjectService) UpdateStatus(slug string, status models.ProjectStatus, changedBy, reason string) error {
	var row models.Project
	if err := s.db.Select("slug, status").Where("slug = ?", slug).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("query project %s: %w", slug, err)
	}

	now := time.Now().UTC()
	if err := s.db.Model(&models.Project{}).Where("slug = ?", slug).
		Updates(map[string]interface{}{"status": string(status), "modified_at": now}).Error; err != nil {
		return fmt.Errorf("update status for project %s: %w", slug, err)
	}

	history := models.ProjectStatusHistory{
		ProjectSlug: slug,
		OldStatus:   row.Status,
		NewStatus:   string(status),
		ChangedBy:   changedBy,
		Reason:      reason,
		ChangedAt:   now,
	}
	if err := s.db.Create(&history).Error; err != nil {
		log.Printf("project: failed to record status history for %s: %v", slug, err)
	}

	log.Printf("project: %s status changed to %s by %s", slug, status, changedBy)
	return nil
}

// StatusHistory returns the audit trail for a project, newest change first.
func (s *ProjectService) StatusHistory(slug string) ([]models.ProjectStatusHistory, error) {
	var rows []models.ProjectStatusHistory
	err := s.db.Where("project_slug = ?", slug).
		Order("changed_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query status history for project %s: %w", slug, err)
	}
	return rows, nil
}

func (s *ProjectService) listSummaries(q *gorm.DB) ([]models.ProjectView, error) {
	var rows []models.Project
	if err := q.Order("sort_order ASC, modified_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query project list: %w", err)
	}

	views := make([]models.ProjectView, 0, len(rows))
	for _, row := range rows {
		view := mapProjectRow(row)
		view.Images = s.loadSummaryImages(row.Slug)
		views = append(views, view)
	}
	return views, nil
}

func (s *ProjectService) loadImages(slug string) (models.ProjectImages, error) {
	var rows []models.ProjectImage
	err := s.db.Where("project_slug = ?", slug).
		Order("image_type, sort_order").
		Find(&rows).Error
	if err != nil {
		return models.ProjectImages{}, fmt.Errorf("load images for project %s: %w", slug, err)
	}
	return bucketImages(slug, rows), nil
}

// loadSummaryImages is the reduced image path for list views. Unlike the
// full loader it degrades on query failure: list pages must still render,
// so a missing or unreachable image table falls back to the synthesized
// conventional path.
func (s *ProjectService) loadSummaryImages(slug string) models.ProjectImages {
	var images models.ProjectImages

	var rows []models.ProjectImage
	err := s.db.Where("project_slug = ? AND image_type IN ?", slug,
		[]string{models.ImageTypeThumbnail, models.ImageTypeHero, models.ImageTypeLogo}).
		Order("sort_order ASC").
		Find(&rows).Error
	if err != nil {
		log.Printf("project: failed to load summary images for %s: %v", slug, err)
	} else {
		for _, row := range rows {
			switch row.ImageType {
			case models.ImageTypeThumbnail:
				// Thumbnail doubles as the Hero shown on cards.
				images.Thumbnail = row.ImagePath
				images.Hero = row.ImagePath
			case models.ImageTypeHero:
				if images.Hero == "" {
					images.Hero = row.ImagePath
				}
			case models.ImageTypeLogo:
				images.Logo = row.ImagePath
			}
		}
	}

	if images.Hero == "" && slug != "" {
		images.Hero = utils.FallbackHeroPath(slug)
	}
	return images
}

func (s *ProjectService) loadHouseTypes(slug string) ([]models.HouseTypeView, error) {
	var rows []models.ProjectHouseType
	err := s.db.Where("project_slug = ?", slug).
		Order("house_type_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load house types for project %s: %w", slug, err)
	}

	houseTypes := make([]models.HouseTypeView, 0, len(rows))
	for _, row := range rows {
		view := mapHouseTypeRow(row)
		plans, err := s.loadFloorPlans(row.HouseTypeID)
		if err != nil {
			return nil, fmt.Errorf("load floor plans for house type %d: %w", row.HouseTypeID, err)
		}
		view.FloorPlans = plans
		houseTypes = append(houseTypes, view)
	}
	return houseTypes, nil
}

func (s *ProjectService) loadFloorPlans(houseTypeID int) ([]models.FloorPlanView, error) {
	var rows []models.ProjectFloorPlan
	err := s.db.Where("house_type_id = ?", houseTypeID).
		Order("sort_order").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	plans := make([]models.FloorPlanView, 0, len(rows))
	for _, row := range rows {
		floorType, ok := models.ParseFloorType(row.FloorType)
		if !ok {
			log.Printf("project: unknown floor type %q on house type %d, defaulting to %s",
				row.FloorType, houseTypeID, floorType)
		}
		plans = append(plans, models.FloorPlanView{
			Code:      row.Code,
			Name:      row.Name,
			ImagePath: row.ImagePath,
			Type:      floorType,
		})
	}
	return plans, nil
}

func (s *ProjectService) loadFacilities(slug string) ([]models.FacilityView, error) {
	var rows []models.ProjectFacility
	err := s.db.Where("project_slug = ?", slug).
		Order("category, name").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load facilities for project %s: %w", slug, err)
	}

	facilities := make([]models.FacilityView, 0, len(rows))
	for _, row := range rows {
		category, ok := models.ParseFacilityCategory(row.Category)
		if !ok {
			log.Printf("project: unknown facility category %q on %s, defaulting to %s",
				row.Category, slug, category)
		}
		facilities = append(facilities, models.FacilityView{
			Code:        row.Code,
			Name:        row.Name,
			Description: row.Description,
			Icon:        row.Icon,
			Category:    category,
		})
	}
	return facilities, nil
}

func (s *ProjectService) loadFeatures(slug string) ([]models.ConceptFeature, error) {
	var rows []models.ProjectFeature
	err := s.db.Where("project_slug = ?", slug).
		Order("sort_order").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load features for project %s: %w", slug, err)
	}

	features := make([]models.ConceptFeature, 0, len(rows))
	for _, row := range rows {
		features = append(features, models.ConceptFeature{
			Title:       row.Title,
			Description: row.Description,
		})
	}
	return features, nil
}

func (s *ProjectService) loadLocation(slug string) (models.LocationView, error) {
	var rows []models.ProjectLocation
	err := s.db.Where("project_slug = ?", slug).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return models.LocationView{}, fmt.Errorf("load location for project %s: %w", slug, err)
	}
	if len(rows) == 0 {
		return models.LocationView{}, nil
	}
	row := rows[0]

	var placeRows []models.ProjectNearbyPlace
	err = s.db.Where("location_id = ?", row.LocationID).
		Order("sort_order").
		Find(&placeRows).Error
	if err != nil {
		return models.LocationView{}, fmt.Errorf("load nearby places for project %s: %w", slug, err)
	}

	places := make([]models.NearbyPlaceView, 0, len(placeRows))
	for _, p := range placeRows {
		places = append(places, models.NearbyPlaceView{
			Name:       p.Name,
			Category:   p.Category,
			Distance:   p.Distance,
			TravelTime: p.TravelTime,
		})
	}

	return models.LocationView{
		District:     row.District,
		Province:     row.Province,
		Latitude:     row.Latitude,
		Longitude:    row.Longitude,
		NearbyPlaces: places,
	}, nil
}

func (s *ProjectService) loadContact(slug string) (models.ContactView, error) {
	var rows []models.ProjectContact
	err := s.db.Where("project_slug = ?", slug).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return models.ContactView{}, fmt.Errorf("load contact for project %s: %w", slug, err)
	}
	if len(rows) == 0 {
		return models.ContactView{Email: salesEmail}, nil
	}
	row := rows[0]

	return models.ContactView{
		Phone:    row.Phone,
		Email:    salesEmail,
		LineID:   row.LineID,
		Facebook: row.Facebook,
		Hours: models.OfficeHours{
			Weekdays: row.HoursWeekday,
			Weekends: row.HoursWeekend,
			Holidays: row.HoursHoliday,
		},
	}, nil
}

const salesEmail = "sales@ppsasset.com"

// mapProjectRow maps a header row to the view, defaulting every field
// explicitly. Unknown type/status strings are logged and defaulted.
func mapProjectRow(row models.Project) models.ProjectView {
	projectType, ok := models.ParseProjectType(row.Type)
	if !ok {
		log.Printf("project: unknown type %q on %s, defaulting to %s", row.Type, row.Slug, projectType)
	}
	status, ok := models.ParseProjectStatus(row.Status)
	if !ok {
		log.Printf("project: unknown status %q on %s, defaulting to %s", row.Status, row.Slug, status)
	}

	return models.ProjectView{
		Slug:        row.Slug,
		Name:        row.NameTH,
		NameTH:      row.NameTH,
		NameEN:      row.NameEN,
		Subtitle:    row.Subtitle,
		Description: row.Description,
		Concept:     row.Concept,
		Type:        projectType,
		Status:      status,
		SortOrder:   row.SortOrder,
		Details: models.ProjectDetails{
			Address:      row.Address,
			ProjectSize:  row.SizeText,
			PropertyType: projectType.PropertyTypeLabel(),
			TotalUnits:   row.TotalUnits,
			LandSize:     row.LandSizeText,
			UsableArea:   row.UsableAreaText,
			PriceRange:   row.PriceRange,
			Developer:    row.Developer,
		},
	}
}

func mapHouseTypeRow(row models.ProjectHouseType) models.HouseTypeView {
	return models.HouseTypeView{
		HouseTypeID: row.HouseTypeID,
		Code:        row.Code,
		Name:        row.Name,
		DisplayName: row.DisplayName,
		Description: row.Description,
		Bedrooms:    row.Bedrooms,
		Bathrooms:   row.Bathrooms,
		Parking:     row.Parking,
		LandSize:    row.LandSizeText,
		UsableArea:  row.UsableAreaText,
	}
}

// bucketImages distributes image rows into the named slots. Gallery rows
// keep their persisted sort order (the query orders by image_type then
// sort_order). Unknown image types are skipped so new categories can be
// added to the data without a code change.
func bucketImages(slug string, rows []models.ProjectImage) models.ProjectImages {
	var images models.ProjectImages
	for _, row := range rows {
		switch row.ImageType {
		case models.ImageTypeHero:
			images.Hero = row.ImagePath
		case models.ImageTypeLogo:
			images.Logo = row.ImagePath
		case models.ImageTypeThumbnail:
			images.Thumbnail = row.ImagePath
		case models.ImageTypeMasterPlan:
			images.MasterPlan = row.ImagePath
		case models.ImageTypeFacility:
			if images.FacilityMain == "" {
				images.FacilityMain = row.ImagePath
			}
		case models.ImageTypeLocationMap:
			images.LocationMap = row.ImagePath
		case models.ImageTypeGallery:
			images.Gallery = append(images.Gallery, row.ImagePath)
		default:
			log.Printf("project: skipping unknown image type %q on %s", row.ImageType, slug)
		}
	}
	return images
}
