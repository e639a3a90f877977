package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Event is the central catalog entity. It is owned by exactly one host
// (HostID is nullable only for legacy rows) and strictly owns its
// tickets and social media links.
type Event struct {
	TrackedModel
	Title      string     `gorm:"unique;not null" json:"title"`
	StartDate  time.Time  `gorm:"type:date;not null;index" json:"event_start_date"`
	EndDate    time.Time  `gorm:"type:date;not null" json:"event_end_date"`
	StartTime  string     `gorm:"not null" json:"event_start_time"`
	EndTime    string     `gorm:"not null" json:"event_end_time"`
	Location   string     `gorm:"not null" json:"location"`
	Address    string     `json:"address"`
	HostID     *uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Host       *User      `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"host,omitempty"`
	Slug       string     `gorm:"index;not null" json:"slug"`
	Categories []Category `gorm:"many2many:event_categories;" json:"category"`
	About      string     `json:"about"`
	Expired    bool       `gorm:"not null;default:false" json:"expired"`

	Tickets     []Ticket      `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"tickets,omitempty"`
	SocialMedia []SocialMedia `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"social_media,omitempty"`
}

// BeforeSave recomputes the slug from the title on every write.
func (event *Event) BeforeSave(tx *gorm.DB) (err error) {
	event.Slug = slug.Make(event.Title)
	return
}

// Validate checks the date invariant. Expired is deliberately not
// derived from the dates; it is only ever set explicitly.
func (event *Event) Validate() error {
	if event.EndDate.Before(event.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}
