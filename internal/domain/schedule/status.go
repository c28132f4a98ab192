package schedule

import (
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusStarted  Status = "started"
	StatusFinished Status = "finished"
)

// One-directional machine: pending -> approved|rejected,
// approved -> started (clock-in), started -> finished (clock-out).
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusStarted},
	StatusStarted:  {StatusFinished},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Domain Actions
// ===============================

func Transition(b *models.AppointmentBooking, to Status) error {
	if !CanTransition(Status(b.BookingStatus), to) {
		return httperr.ErrBusiness("invalid_state")
	}
	b.BookingStatus = string(to)
	return nil
}

func Start(b *models.AppointmentBooking) error {
	return Transition(b, StatusStarted)
}

func Finish(b *models.AppointmentBooking) error {
	return Transition(b, StatusFinished)
}
