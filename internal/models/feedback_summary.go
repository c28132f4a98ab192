package models

import "time"

// Running rating totals, one row per caregiver, created at onboarding.
// AverageRates = TotalRates/TotalFeedback rounded to the nearest half
// point; only the feedback use case mutates it.
type FeedbackSummary struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	CaregiverID uint `gorm:"uniqueIndex" json:"caregiver_id"`

	TotalFeedback int     `gorm:"default:0" json:"total_feedback"`
	TotalRates    float64 `gorm:"default:0" json:"total_rates"`
	AverageRates  float64 `gorm:"default:0" json:"average_rates"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
