package models

import "time"

type AppointmentBooking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	CaregiverID uint `gorm:"index" json:"caregiver_id"`
	Caregiver   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"caregiver"`

	// subject of the appointment: the patient itself, or a member id
	// when BookingFor == "member"
	UserID   uint `json:"user_id"`
	BookedBy uint `json:"booked_by"`

	StartAppointment time.Time `gorm:"not null" json:"start_appointment"`
	EndAppointment   time.Time `gorm:"not null" json:"end_appointment"`

	TotalHours float64 `gorm:"type:decimal(5,2)" json:"total_hours"`
	TotalCost  float64 `gorm:"type:decimal(10,2)" json:"total_cost"`

	BookingStatus string `gorm:"size:20;default:'pending'" json:"booking_status"`
	BookingFor    string `gorm:"size:10;default:'self'" json:"booking_for"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
