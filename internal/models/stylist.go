package models

import "time"

type Stylist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Stylists log in through their user account; walk-in-only staff
	// may have no account at all.
	UserID *uint `gorm:"uniqueIndex" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Bio       string `gorm:"size:500" json:"bio"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
