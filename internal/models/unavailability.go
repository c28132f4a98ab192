package models

import "time"

// Caregiver-declared block-out. Ranges may span several calendar days;
// StartDate <= EndDate always holds.
type UnavailabilityRange struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	CaregiverID uint `gorm:"index" json:"caregiver_id"`

	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
