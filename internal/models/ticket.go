package models

import "github.com/google/uuid"

// Ticket is a priced ticket type belonging to exactly one event.
type Ticket struct {
	TrackedModel
	TicketType  string    `gorm:"not null" json:"ticket_type"`
	TicketPrice float64   `gorm:"not null" json:"ticket_price"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	Event       *Event    `gorm:"foreignKey:EventID" json:"-"`
}
