package availability

import (
	"context"
	"time"

	"github.com/CareBridgeServices/care-scheduler/internal/domain/feedback"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// mockRepo is an in-memory stand-in for the scheduling repository,
// covering only what the availability use case touches.
type mockRepo struct {
	templates      map[string]*models.WeeklyAvailability
	holidays       map[string]bool
	rateCards      []models.RateCard
	unavailability []models.UnavailabilityRange
	bookings       []models.AppointmentBooking
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		templates: make(map[string]*models.WeeklyAvailability),
		holidays:  make(map[string]bool),
	}
}

func (m *mockRepo) GetCaregiverDetail(_ context.Context, _ uint) (*models.CaregiverDetail, error) {
	return nil, nil
}

func (m *mockRepo) CaregiverExists(_ context.Context, _ uint) (bool, error) {
	return true, nil
}

func (m *mockRepo) GetMember(_ context.Context, _, _ uint) (*models.PatientMember, error) {
	return nil, nil
}

func (m *mockRepo) GetWeeklyAvailability(_ context.Context, _ uint, weekday string) (*models.WeeklyAvailability, error) {
	return m.templates[weekday], nil
}

func (m *mockRepo) HasHoliday(_ context.Context, date string) (bool, error) {
	return m.holidays[date], nil
}

func (m *mockRepo) ListRateCards(_ context.Context) ([]models.RateCard, error) {
	return m.rateCards, nil
}

func (m *mockRepo) ListUnavailability(_ context.Context, _ uint) ([]models.UnavailabilityRange, error) {
	return m.unavailability, nil
}

func (m *mockRepo) ListBookingsForDay(_ context.Context, _ uint, dayStart, dayEnd time.Time) ([]models.AppointmentBooking, error) {
	var out []models.AppointmentBooking
	for _, b := range m.bookings {
		if !b.StartAppointment.Before(dayStart) && b.StartAppointment.Before(dayEnd) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockRepo) CreateBookingIfFree(_ context.Context, b *models.AppointmentBooking) error {
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *mockRepo) GetBookingForCaregiver(_ context.Context, _, _ uint) (*models.AppointmentBooking, error) {
	return nil, nil
}

func (m *mockRepo) UpdateBooking(_ context.Context, _ *models.AppointmentBooking) error {
	return nil
}

func (m *mockRepo) SaveVerification(_ context.Context, _ uint, _ string) error {
	return nil
}

func (m *mockRepo) ConsumeVerification(_ context.Context, _ uint, _ string) (bool, error) {
	return false, nil
}

func (m *mockRepo) FeedbackExists(_ context.Context, _, _ uint) (bool, error) {
	return false, nil
}

func (m *mockRepo) ApplyFeedback(_ context.Context, fb *models.Feedback) (*models.FeedbackSummary, error) {
	s := &models.FeedbackSummary{CaregiverID: fb.CaregiverID}
	feedback.Apply(s, fb.Rate)
	return s, nil
}
