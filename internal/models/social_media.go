package models

import "github.com/google/uuid"

// SocialMedia holds the optional social links of a single event.
type SocialMedia struct {
	TrackedModel
	Facebook  string    `json:"facebook"`
	Instagram string    `json:"instagram"`
	Twitter   string    `json:"twitter"`
	LinkedIn  string    `json:"linkedin"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	Event     *Event    `gorm:"foreignKey:EventID" json:"-"`
}
