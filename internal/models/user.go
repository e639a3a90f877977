package models

// User is an email-keyed account. IsHost flips true the first time a
// HostProfile is created for the user and never reverts.
type User struct {
	TrackedModel
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
	IsStaff  bool   `gorm:"not null;default:false" json:"is_staff"`
	IsHost   bool   `gorm:"not null;default:false" json:"is_host"`

	Profile *HostProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}
