package entities

import (
	"github.com/google/uuid"
)

const (
	GenerationStatusCreated   = "Created"
	GenerationStatusCancelled = "Cancelled"
	GenerationStatusFailed    = "Failed"
)

// GenerationLog records one run of the recipe authoring wizard.
type GenerationLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `json:"title"`
	Slug        string    `gorm:"index" json:"slug"`
	SiteID      string    `json:"site_id"`
	DocumentID  string    `json:"document_id,omitempty"`
	Model       string    `json:"model"`
	Cuisine     string    `json:"cuisine"`
	Difficulty  string    `json:"difficulty"`
	Status      string    `json:"status"` // "Created", "Cancelled", "Failed"
	ErrorDetail string    `json:"error_detail,omitempty" gorm:"type:text"`

	Timestamp
}
