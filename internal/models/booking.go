package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Client-facing reference code, safe to expose in confirmations.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	StylistID uint    `gorm:"index:idx_booking_stylist_date" json:"stylist_id"`
	Stylist   Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ClientID    uint   `json:"client_id"`
	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientEmail string `gorm:"size:100" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	// Salon-local calendar date and start time-of-day.
	Date string `gorm:"size:10;index:idx_booking_stylist_date" json:"date"`
	Time string `gorm:"size:8" json:"time"`

	// Snapshot of the service duration at booking time. Editing the
	// service later must not move existing appointments.
	DurationMinutes int `json:"duration_minutes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CanceledAt  *time.Time `json:"canceled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
