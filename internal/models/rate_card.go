package models

import "time"

// Price-per-hour for a (day-type, band) pair, active inside the
// StartTime..EndTime clock window. Exactly one row per pair.
type RateCard struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DayType string `gorm:"size:10;index:idx_daytype_band,unique" json:"day_type"`
	Band    string `gorm:"size:15;index:idx_daytype_band,unique" json:"band"`

	PricePerHour float64 `gorm:"type:decimal(10,2)" json:"price_perhour"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
