package entities

import (
	"time"

	"gorm.io/gorm"
)

type Timestamp struct {
	CreatedAt time.Time      `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:timestamp" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Slug mirrors the store's slug object, {"current": "..."}.
type Slug struct {
	Current string `json:"current"`
}

// Reference points at another store document by id.
type Reference struct {
	Type string `json:"_type"`
	Ref  string `json:"_ref"`
	Key  string `json:"_key,omitempty"`
}

func NewReference(id string) Reference {
	return Reference{Type: "reference", Ref: id}
}
