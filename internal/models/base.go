package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackedModel carries the identity and timestamp columns shared by
// every entity in the catalog.
type TrackedModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"date_created"`
	UpdatedAt time.Time `json:"last_updated"`
}

func (m *TrackedModel) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
