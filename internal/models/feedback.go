package models

import "time"

type Feedback struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID      uint `gorm:"index:idx_user_appointment,unique" json:"user_id"`
	CaregiverID uint `gorm:"index" json:"caregiver_id"`

	AppointmentID uint `gorm:"index:idx_user_appointment,unique" json:"appointment_id"`

	Rate     float64 `json:"rate"`
	Comments string  `gorm:"size:500" json:"comments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
