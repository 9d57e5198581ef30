package site

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PageDraft     = "draft"
	PagePublished = "published"
)

// Page is one informational page of the marketing site (home, about,
// how-it-works, refund-policy, ...) served to the frontend as ordered blocks.
type Page struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Slug   string `gorm:"not null;uniqueIndex" json:"slug"`
	Title  string `gorm:"not null" json:"title"`
	Status string `gorm:"not null;default:'draft';index" json:"status"`

	MetaDescription string `json:"meta_description"`

	Blocks []PageBlock `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Page) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type PageBlock struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	PageID    string `gorm:"type:uuid;not null;index" json:"page_id"`
	SortIndex int    `gorm:"not null;default:0;index" json:"sort_index"`

	Type  string          `gorm:"not null;index" json:"type"`
	Props json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"props"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *PageBlock) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
