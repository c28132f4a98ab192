package schedule

import (
	"context"
	"time"

	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

type Repository interface {
	// -------- Caregiver --------
	GetCaregiverDetail(
		ctx context.Context,
		caregiverID uint,
	) (*models.CaregiverDetail, error)

	CaregiverExists(
		ctx context.Context,
		caregiverID uint,
	) (bool, error)

	GetMember(
		ctx context.Context,
		memberID uint,
		patientID uint,
	) (*models.PatientMember, error)

	// -------- Weekly template --------
	// GetWeeklyAvailability returns (nil, nil) when no row exists for the
	// weekday; an absent template means fully unavailable, not an error.
	GetWeeklyAvailability(
		ctx context.Context,
		caregiverID uint,
		weekday string,
	) (*models.WeeklyAvailability, error)

	// -------- Holidays / rate cards --------
	HasHoliday(
		ctx context.Context,
		date string,
	) (bool, error)

	ListRateCards(
		ctx context.Context,
	) ([]models.RateCard, error)

	// -------- Unavailability --------
	ListUnavailability(
		ctx context.Context,
		caregiverID uint,
	) ([]models.UnavailabilityRange, error)

	// -------- Bookings --------
	ListBookingsForDay(
		ctx context.Context,
		caregiverID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.AppointmentBooking, error)

	// CreateBookingIfFree runs the overlap check and the insert as one
	// atomic unit and fails with the slot_already_booked business error
	// when any non-rejected booking overlaps [start, end).
	CreateBookingIfFree(
		ctx context.Context,
		b *models.AppointmentBooking,
	) error

	GetBookingForCaregiver(
		ctx context.Context,
		bookingID uint,
		caregiverID uint,
	) (*models.AppointmentBooking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.AppointmentBooking,
	) error

	// -------- Clock-in verification --------
	SaveVerification(
		ctx context.Context,
		userID uint,
		otp string,
	) error

	ConsumeVerification(
		ctx context.Context,
		userID uint,
		otp string,
	) (bool, error)

	// -------- Feedback --------
	FeedbackExists(
		ctx context.Context,
		userID uint,
		appointmentID uint,
	) (bool, error)

	// ApplyFeedback persists the feedback row and bumps the caregiver's
	// summary in one atomic unit per caregiver.
	ApplyFeedback(
		ctx context.Context,
		fb *models.Feedback,
	) (*models.FeedbackSummary, error)
}
