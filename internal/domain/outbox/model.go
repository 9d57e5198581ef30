package outbox

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskPending = "pending"
	TaskSent    = "sent"
	TaskFailed  = "failed"
)

const DefaultMaxAttempts = 3

// EmailTask is a queued transactional email. Sends are recorded before they
// are attempted so a failed send is visible and retryable instead of being a
// log line nobody reads. Tasks that exhaust MaxAttempts stay in "failed" as
// the dead-letter set until an operator requeues them.
type EmailTask struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	To      string `gorm:"not null" json:"to"`
	Subject string `gorm:"not null" json:"subject"`
	HTML    string `gorm:"not null" json:"-"`

	// Kind labels what the email is for (staff_review, customer_approved,
	// admin_copy, submitter_confirmation, submitter_rejected).
	Kind string `gorm:"index" json:"kind"`

	Status        string     `gorm:"not null;default:'pending';index" json:"status"`
	Attempts      int        `gorm:"not null;default:0" json:"attempts"`
	MaxAttempts   int        `gorm:"not null;default:3" json:"max_attempts"`
	LastError     *string    `json:"last_error,omitempty"`
	NextAttemptAt *time.Time `gorm:"index" json:"next_attempt_at,omitempty"`
	SentAt        *time.Time `json:"sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *EmailTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.MaxAttempts == 0 {
		t.MaxAttempts = DefaultMaxAttempts
	}
	return nil
}
