package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Spacespixel/ppsasset-new/config"
	"github.com/Spacespixel/ppsasset-new/models"

	"gorm.io/gorm"
)

// RegistrationService persists customer leads. Duplicate detection is
// advisory only: a lookup failure produces a log line, never a blocked
// submission, because losing a lead costs more than storing one twice.
type RegistrationService struct {
	db       *gorm.DB
	mappings *MappingService
	now      func() time.Time
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	if db == nil {
		db = config.DB
	}
	return &RegistrationService{
		db:       db,
		mappings: NewMappingService(db),
		now:      time.Now,
	}
}

// CheckDuplicates reports Thai-language warnings for prior leads with the
// same name pair or the same phone number, across all projects. Errors are
// swallowed; the check never fails a submission.
func (s *RegistrationService) CheckDuplicates(req models.RegistrationRequest) []string {
	var warnings []string

	var nameCount int64
	err := s.db.Model(&models.LeadTransaction{}).
		Where("first_name = ? AND last_name = ?", req.FirstName, req.LastName).
		Count(&nameCount).Error
	if err != nil {
		log.Printf("registration: duplicate name check failed: %v", err)
	} else if nameCount > 0 {
		warnings = append(warnings,
			fmt.Sprintf("ชื่อ %s %s เคยลงทะเบียนไว้แล้ว", req.FirstName, req.LastName))
	}

	var phoneCount int64
	err = s.db.Model(&models.LeadTransaction{}).
		Where("tel_no = ?", req.TelNo).
		Count(&phoneCount).Error
	if err != nil {
		log.Printf("registration: duplicate phone check failed: %v", err)
	} else if phoneCount > 0 {
		warnings = append(warnings,
			fmt.Sprintf("เบอร์โทรศัพท์ %s เคยลงทะเบียนไว้แล้ว", req.TelNo))
	}

	return warnings
}

// Save persists the lead and returns the generated reference. The slug is
// translated to the legacy project code for the reporting systems; a failed
// translation stores an empty code rather than rejecting the lead.
func (s *RegistrationService) Save(req models.RegistrationRequest) (string, error) {
	legacyCode, err := s.mappings.LegacyCodeForSlug(req.ProjectSlug)
	if err != nil {
		log.Printf("registration: no legacy code for project %s: %v", req.ProjectSlug, err)
		legacyCode = ""
	}

	now := s.now().UTC()
	lead := models.LeadTransaction{
		TransactionID:     transactionIDAt(now),
		LegacyProjectCode: legacyCode,
		ProjectName:       req.ProjectName,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Budget:            req.Budget,
		Province:          req.Province,
		District:          req.District,
		TelNo:             req.TelNo,
		Email:             req.Email,
		ClientFrom:        req.ClientFrom,
		Remark:            req.Remark,
		AppointmentDate:   req.AppointmentDate,
		AppointmentTime:   req.AppointmentTime,
		ConsentMarketing:  req.ConsentMarketing,
		UtmSource:         req.UtmSource,
		UtmMedium:         req.UtmMedium,
		UtmCampaign:       req.UtmCampaign,
		UtmTerm:           req.UtmTerm,
		UtmContent:        req.UtmContent,
		CreatedAt:         now,
	}

	if err := s.db.Create(&lead).Error; err != nil {
		return "", fmt.Errorf("insert lead for project %s: %w", req.ProjectSlug, err)
	}

	log.Printf("registration: saved lead %s for project %s", lead.TransactionID, req.ProjectSlug)
	return lead.TransactionID, nil
}

// transactionIDAt formats the reference the reporting systems expect:
// two-digit year through seconds, then milliseconds (15 digits total).
// Always derived from the UTC instant, wherever the server runs.
func transactionIDAt(t time.Time) string {
	t = t.UTC()
	return t.Format("060102150405") + fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
}
