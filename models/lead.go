// models/lead.go
package models

import "time"

// LeadTransaction represents the lead_transaction table. Rows are written
// once by the registration service and never updated; older reporting
// systems read them keyed by the legacy project code, which is why the
// slug is translated before the insert.
type LeadTransaction struct {
	TransactionID     string     `gorm:"primaryKey;column:transaction_id" json:"transaction_id"`
	LegacyProjectCode string     `gorm:"column:legacy_project_code" json:"legacy_project_code"`
	ProjectName       string     `gorm:"column:project_name" json:"project_name"`
	FirstName         string     `gorm:"column:first_name" json:"first_name"`
	LastName          string     `gorm:"column:last_name" json:"last_name"`
	Budget            string     `gorm:"column:budget" json:"budget"`
	Province          string     `gorm:"column:province" json:"province"`
	District          string     `gorm:"column:district" json:"district"`
	TelNo             string     `gorm:"column:tel_no" json:"tel_no"`
	Email             string     `gorm:"column:email" json:"email"`
	ClientFrom        string     `gorm:"column:client_from" json:"client_from"`
	Remark            string     `gorm:"column:remark" json:"remark"`
	AppointmentDate   *time.Time `gorm:"column:appointment_date" json:"appointment_date"`
	AppointmentTime   string     `gorm:"column:appointment_time" json:"appointment_time"`
	ConsentMarketing  bool       `gorm:"column:consent_marketing" json:"consent_marketing"`
	UtmSource         string     `gorm:"column:utm_source" json:"utm_source"`
	UtmMedium         string     `gorm:"column:utm_medium" json:"utm_medium"`
	UtmCampaign       string     `gorm:"column:utm_campaign" json:"utm_campaign"`
	UtmTerm           string     `gorm:"column:utm_term" json:"utm_term"`
	UtmContent        string     `gorm:"column:utm_content" json:"utm_content"`
	CreatedAt         time.Time  `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name for LeadTransaction
func (LeadTransaction) TableName() string {
	return "lead_transaction"
}

// ===== Request/Response DTOs =====

// RegistrationRequest is the lead submission payload from the project page.
type RegistrationRequest struct {
	ProjectSlug      string     `json:"project_slug" binding:"required"`
	ProjectName      string     `json:"project_name" binding:"required"`
	FirstName        string     `json:"first_name" binding:"required"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email" binding:"required,email"`
	TelNo            string     `json:"tel_no" binding:"required"`
	Province         string     `json:"province"`
	District         string     `json:"district"`
	Budget           string     `json:"budget"`
	AppointmentDate  *time.Time `json:"appointment_date"`
	AppointmentTime  string     `json:"appointment_time"`
	Remark           string     `json:"remark"`
	ClientFrom       string     `json:"client_from"`
	ConsentMarketing bool       `json:"consent_marketing"`
	UtmSource        string     `json:"utm_source"`
	UtmMedium        string     `json:"utm_medium"`
	UtmCampaign      string     `json:"utm_campaign"`
	UtmTerm          string     `json:"utm_term"`
	UtmContent       string     `json:"utm_content"`
}

// RegistrationResponse is returned on a successful submission. Reference is
// the generated transaction ID, shown to the customer as confirmation.
type RegistrationResponse struct {
	Reference         string   `json:"reference"`
	ProjectName       string   `json:"project_name"`
	DuplicateWarnings []string `json:"duplicate_warnings,omitempty"`
}
