package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/CareBridgeServices/care-scheduler/internal/audit"
	"github.com/CareBridgeServices/care-scheduler/internal/domain/schedule"
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// Clock-in is two-step: the caregiver requests an OTP which is stored
// against the booking patient, then confirms it to move the booking to
// started. Clock-out needs no confirmation.

type Clock struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewClock(
	repo schedule.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *Clock {
	return &Clock{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

type ClockInput struct {
	CaregiverID uint
	BookingID   uint
	OTP         string
}

func (uc *Clock) booking(
	ctx context.Context,
	in ClockInput,
) (*models.AppointmentBooking, error) {

	b, err := uc.repo.GetBookingForCaregiver(ctx, in.BookingID, in.CaregiverID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	return b, nil
}

// RequestClockIn issues the confirmation code. Delivery is out of scope;
// the code is persisted for the verify step and traced at debug level.
func (uc *Clock) RequestClockIn(ctx context.Context, in ClockInput) error {
	b, err := uc.booking(ctx, in)
	if err != nil {
		return err
	}

	if !schedule.CanTransition(schedule.Status(b.BookingStatus), schedule.StatusStarted) {
		return httperr.ErrBusiness("invalid_state")
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}

	if err := uc.repo.SaveVerification(ctx, b.BookedBy, otp); err != nil {
		return err
	}

	uc.log.Debug("clock-in code issued",
		zap.Uint("booking_id", b.ID),
		zap.Uint("patient_id", b.BookedBy),
	)
	return nil
}

func (uc *Clock) VerifyClockIn(
	ctx context.Context,
	in ClockInput,
) (*models.AppointmentBooking, error) {

	b, err := uc.booking(ctx, in)
	if err != nil {
		return nil, err
	}

	ok, err := uc.repo.ConsumeVerification(ctx, b.BookedBy, in.OTP)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("invalid_otp")
	}

	if err := schedule.Start(b); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CaregiverID,
		Action:   "booking_started",
		Entity:   "appointment_booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *Clock) ClockOut(
	ctx context.Context,
	in ClockInput,
) (*models.AppointmentBooking, error) {

	b, err := uc.booking(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := schedule.Finish(b); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CaregiverID,
		Action:   "booking_finished",
		Entity:   "appointment_booking",
		EntityID: &b.ID,
	})

	return b, nil
}
