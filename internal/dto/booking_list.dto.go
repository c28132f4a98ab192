package dto

import "time"

type BookingListDTO struct {
	ID               uint      `json:"id"`
	Reference        string    `json:"reference"`
	StartAppointment time.Time `json:"start_appointment"`
	EndAppointment   time.Time `json:"end_appointment"`
	BookingStatus    string    `json:"booking_status"`
	BookingFor       string    `json:"booking_for"`
	TotalHours       float64   `json:"total_hours"`
	TotalCost        float64   `json:"total_cost"`
}
