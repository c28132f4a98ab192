package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CareBridgeServices/care-scheduler/internal/audit"
	"github.com/CareBridgeServices/care-scheduler/internal/domain/schedule"
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CaregiverID uint
	RequesterID uint

	StartAppointment time.Time
	EndAppointment   time.Time

	BookingFor string
	MemberID   uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates in order, short-circuiting on the first failure:
// caregiver existence, same calendar date, start before end, member
// ownership. The overlap check and insert happen atomically inside the
// repository, so two racing requests for overlapping windows cannot both
// commit.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.AppointmentBooking, error) {

	detail, err := uc.repo.GetCaregiverDetail(ctx, in.CaregiverID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, httperr.ErrBusiness("invalid_caregiver")
	}

	start := in.StartAppointment.UTC()
	end := in.EndAppointment.UTC()

	if start.Format("2006-01-02") != end.Format("2006-01-02") {
		return nil, httperr.ErrBusiness("multi_day_booking")
	}

	if !start.Before(end) {
		return nil, httperr.ErrBusiness("start_after_end")
	}

	subjectID := in.RequesterID
	if in.BookingFor != "self" {
		member, err := uc.repo.GetMember(ctx, in.MemberID, in.RequesterID)
		if err != nil {
			return nil, err
		}
		if member == nil {
			return nil, httperr.ErrBusiness("member_not_found")
		}
		subjectID = member.ID
	}

	hours := schedule.Hours(start, end)

	b := &models.AppointmentBooking{
		Reference:        uuid.NewString(),
		CaregiverID:      in.CaregiverID,
		UserID:           subjectID,
		BookedBy:         in.RequesterID,
		StartAppointment: start,
		EndAppointment:   end,
		TotalHours:       schedule.Round2(hours),
		TotalCost:        schedule.Round2(detail.ServicesCost * hours),
		BookingStatus:    string(schedule.InitialStatus()),
		BookingFor:       in.BookingFor,
	}

	if err := uc.repo.CreateBookingIfFree(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.RequesterID,
		Action:   "booking_created",
		Entity:   "appointment_booking",
		EntityID: &b.ID,
	})

	return b, nil
}
