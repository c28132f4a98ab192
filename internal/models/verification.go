package models

import "time"

// Pending clock-in confirmation code for a patient account.
type Verification struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	OTP string `gorm:"size:6" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
