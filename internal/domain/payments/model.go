package payments

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TypeJobApplication = "job_application"
	TypeHiringRequest  = "hiring_request"
)

const (
	StatusPending       = "pending"
	StatusPendingReview = "pending_review"
	StatusCompleted     = "completed"
	StatusRejected      = "rejected"
)

const (
	MethodMpesa             = "mpesa"
	MethodBankTransfer      = "bank_transfer"
	MethodMobileMoneyUganda = "mobile_money_uganda"
)

// Payment is one checkout attempt. The original form submission rides along
// in FormData untouched until it is forwarded after approval.
type Payment struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	PaymentType string  `gorm:"not null;index" json:"payment_type"`
	AmountKES   float64 `gorm:"not null" json:"amount_kes"`
	AmountUSD   float64 `gorm:"not null" json:"amount_usd"`

	PaymentStatus string         `gorm:"not null;default:'pending';index" json:"payment_status"`
	PaymentMethod string         `json:"payment_method"`
	FormData      datatypes.JSON `gorm:"not null" json:"form_data"`
	Email         string         `gorm:"not null;index" json:"email"`

	PaymentProofURL *string `json:"payment_proof_url,omitempty"`
	ApprovalToken   *string `gorm:"uniqueIndex:idx_payments_approval_token" json:"-"`

	AdminNotes  *string    `json:"admin_notes,omitempty"`
	ReviewedBy  *string    `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ForwardedAt *time.Time `json:"forwarded_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ValidType reports whether t is one of the supported payment types.
func ValidType(t string) bool {
	return t == TypeJobApplication || t == TypeHiringRequest
}

// ValidMethod reports whether m is an accepted manual payment method.
// PayPal exists in the historical data but is disabled for new payments.
func ValidMethod(m string) bool {
	switch m {
	case MethodMpesa, MethodBankTransfer, MethodMobileMoneyUganda:
		return true
	}
	return false
}

// Terminal reports whether a status accepts no further transitions.
func Terminal(status string) bool {
	return status == StatusCompleted || status == StatusRejected
}

// PaymentProof is an append-only record of one uploaded receipt file.
type PaymentProof struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	PaymentID  string    `gorm:"type:uuid;not null;index" json:"payment_id"`
	Payment    *Payment  `gorm:"foreignKey:PaymentID" json:"-"`
	FileURL    string    `gorm:"not null" json:"file_url"`
	FileName   string    `gorm:"not null" json:"file_name"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (p *PaymentProof) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
