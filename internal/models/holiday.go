package models

import (
	"time"

	"gorm.io/datatypes"
)

// Global holiday window, inclusive on both bounds. Affects pricing only.
type Holiday struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HolidayStartDate datatypes.Date `gorm:"not null" json:"holiday_start_date"`
	HolidayEndDate   datatypes.Date `gorm:"not null" json:"holiday_end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
