package models

import (
	"time"

	"gorm.io/datatypes"
)

// One row per (caregiver, weekday). Created empty at onboarding and only
// ever emptied, never deleted. AvailabilitySlots holds the generated
// half-hour start labels ("HH:MM"); storage order is not significant.
type WeeklyAvailability struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	CaregiverID uint `gorm:"index:idx_caregiver_weekday,unique" json:"caregiver_id"`

	WeekDay string `gorm:"size:10;index:idx_caregiver_weekday,unique" json:"week_day"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	AvailabilitySlots datatypes.JSONSlice[string] `json:"availability_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
