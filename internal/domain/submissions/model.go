package submissions

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workflow statuses for job applications. Only "new" is set by this service;
// the rest are moved by staff from the dashboard.
const (
	ApplicationNew       = "new"
	ApplicationReviewing = "reviewing"
	ApplicationContacted = "contacted"
	ApplicationHired     = "hired"
	ApplicationRejected  = "rejected"
)

const (
	RequestNew       = "new"
	RequestMatched   = "matched"
	RequestCompleted = "completed"
	RequestCancelled = "cancelled"
)

type JobApplication struct {
	ID              string  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName        string  `gorm:"not null" json:"full_name"`
	Email           string  `gorm:"not null;index" json:"email"`
	Phone           string  `gorm:"not null" json:"phone"`
	Location        *string `json:"location,omitempty"`
	Education       *string `json:"education,omitempty"`
	Experience      *string `json:"experience,omitempty"`
	Skills          *string `json:"skills,omitempty"`
	DesiredPosition string  `gorm:"not null" json:"desired_position"`
	Salary          *string `json:"salary,omitempty"`
	Availability    *string `json:"availability,omitempty"`
	AdditionalInfo  *string `json:"additional_info,omitempty"`
	DateOfBirth     *string `json:"date_of_birth,omitempty"`

	Status     string  `gorm:"not null;default:'new';index" json:"status"`
	AdminNotes *string `json:"admin_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type HiringRequest struct {
	ID            string  `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName   string  `gorm:"not null" json:"company_name"`
	ContactPerson string  `gorm:"not null" json:"contact_person"`
	Email         string  `gorm:"not null;index" json:"email"`
	Phone         string  `gorm:"not null" json:"phone"`
	Industry      string  `json:"industry"`
	Position      string  `gorm:"not null" json:"position"`
	Requirements  string  `json:"requirements"`
	Urgency       string  `json:"urgency"`
	JobCategory   *string `json:"job_category,omitempty"`
	AgeRange      *string `json:"age_range,omitempty"`

	Status     string  `gorm:"not null;default:'new';index" json:"status"`
	AdminNotes *string `json:"admin_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *HiringRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
