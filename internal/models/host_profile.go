package models

import "github.com/google/uuid"

// HostProfile holds the company details of an event host. At most one
// per user, enforced by the unique index on UserID.
type HostProfile struct {
	TrackedModel
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User               *User     `gorm:"foreignKey:UserID" json:"-"`
	CompanyName        string    `gorm:"unique;not null" json:"company_name"`
	CompanyDescription string    `json:"company_description"`
	WebsiteURL         string    `json:"website_url"`
	PhoneNumber        string    `json:"phone_number"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Country            string    `json:"country"`
	ZipCode            string    `json:"zip_code"`
	Twitter            string    `json:"twitter"`
	Facebook           string    `json:"facebook"`
	Instagram          string    `json:"instagram"`
}
