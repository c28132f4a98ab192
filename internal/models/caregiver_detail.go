package models

import "time"

type CaregiverDetail struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	// per-hour rate charged for every booked slot
	ServicesCost float64 `gorm:"type:decimal(10,2)" json:"services_cost"`

	WeekHours int    `json:"week_hours"`
	About     string `gorm:"size:500" json:"about"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
