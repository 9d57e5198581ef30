package jobs

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OpeningActive = "active"
	OpeningClosed = "closed"
)

// JobOpening is an independently managed listing. The site only ever reads
// these; they are not tied to the payment workflow.
type JobOpening struct {
	ID             string  `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string  `gorm:"not null" json:"title"`
	Company        string  `gorm:"not null" json:"company"`
	Location       string  `gorm:"not null" json:"location"`
	Description    string  `gorm:"not null" json:"description"`
	Requirements   string  `gorm:"not null" json:"requirements"`
	SalaryRange    *string `json:"salary_range,omitempty"`
	EmploymentType string  `gorm:"not null" json:"employment_type"`
	Category       string  `gorm:"not null;index" json:"category"`
	Status         string  `gorm:"not null;default:'active';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *JobOpening) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
