package models

import "time"

// StylistService marks a stylist as eligible to perform a service.
type StylistService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StylistID uint `gorm:"uniqueIndex:idx_stylist_service" json:"stylist_id"`
	ServiceID uint `gorm:"uniqueIndex:idx_stylist_service" json:"service_id"`

	CreatedAt time.Time `json:"created_at"`
}
