package models

import "time"

// WeeklyAvailability is one row per stylist per weekday (0=Sunday ..
// 6=Saturday). Times are salon-local "HH:MM:SS" strings. Rows are
// never hard-deleted, only toggled via IsAvailable.
type WeeklyAvailability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StylistID uint `gorm:"uniqueIndex:idx_stylist_weekday" json:"stylist_id"`
	DayOfWeek int  `gorm:"uniqueIndex:idx_stylist_weekday" json:"day_of_week"`

	StartTime   string `gorm:"size:8" json:"start_time"`
	EndTime     string `gorm:"size:8" json:"end_time"`
	IsAvailable bool   `json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
