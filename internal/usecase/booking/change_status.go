package booking

import (
	"context"

	"github.com/CareBridgeServices/care-scheduler/internal/audit"
	"github.com/CareBridgeServices/care-scheduler/internal/domain/schedule"
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

type ChangeStatusInput struct {
	CaregiverID uint
	BookingID   uint
	Status      string
}

type ChangeStatus struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute is the caregiver's decision on a pending booking. Only the
// approve/reject pair is reachable here; clock-in and clock-out own the
// later transitions.
func (uc *ChangeStatus) Execute(
	ctx context.Context,
	in ChangeStatusInput,
) (*models.AppointmentBooking, error) {

	to := schedule.Status(in.Status)
	if to != schedule.StatusApproved && to != schedule.StatusRejected {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.GetBookingForCaregiver(ctx, in.BookingID, in.CaregiverID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := schedule.Transition(b, to); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CaregiverID,
		Action:   "booking_" + in.Status,
		Entity:   "appointment_booking",
		EntityID: &b.ID,
	})

	return b, nil
}
