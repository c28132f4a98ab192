package dto

import "github.com/CareBridgeServices/care-scheduler/internal/domain/schedule"

type AvailabilityDayDTO struct {
	CaregiverID      uint                  `json:"caregiver_id"`
	AvailabilityDate string                `json:"availability_date"`
	Weekday          string                `json:"weekday"`
	IsHoliday        bool                  `json:"is_holiday"`
	Slots            []schedule.SlotStatus `json:"slots"`
}
