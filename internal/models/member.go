package models

import "time"

// Dependent of a patient account, bookable via booking_for = "member".
type PatientMember struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PatientID uint `gorm:"index" json:"patient_id"`
	Patient   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Relation string `gorm:"size:50" json:"relation"`
	Email    string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
