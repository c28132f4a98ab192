package booking

import (
	"context"
	"sync"
	"time"

	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// mockRepo keeps bookings in memory and reproduces the repository's
// atomic overlap guard with a mutex, which is what makes the concurrency
// test below meaningful.
type mockRepo struct {
	mu sync.Mutex

	details  map[uint]*models.CaregiverDetail
	members  map[uint]*models.PatientMember
	bookings map[uint]*models.AppointmentBooking
	codes    map[uint]string

	nextID uint
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		details:  make(map[uint]*models.CaregiverDetail),
		members:  make(map[uint]*models.PatientMember),
		bookings: make(map[uint]*models.AppointmentBooking),
		codes:    make(map[uint]string),
	}
}

func (m *mockRepo) GetCaregiverDetail(_ context.Context, caregiverID uint) (*models.CaregiverDetail, error) {
	return m.details[caregiverID], nil
}

func (m *mockRepo) CaregiverExists(_ context.Context, caregiverID uint) (bool, error) {
	_, ok := m.details[caregiverID]
	return ok, nil
}

func (m *mockRepo) GetMember(_ context.Context, memberID, patientID uint) (*models.PatientMember, error) {
	member, ok := m.members[memberID]
	if !ok || member.PatientID != patientID {
		return nil, nil
	}
	return member, nil
}

func (m *mockRepo) GetWeeklyAvailability(_ context.Context, _ uint, _ string) (*models.WeeklyAvailability, error) {
	return nil, nil
}

func (m *mockRepo) HasHoliday(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (m *mockRepo) ListRateCards(_ context.Context) ([]models.RateCard, error) {
	return nil, nil
}

func (m *mockRepo) ListUnavailability(_ context.Context, _ uint) ([]models.UnavailabilityRange, error) {
	return nil, nil
}

func (m *mockRepo) ListBookingsForDay(_ context.Context, caregiverID uint, dayStart, dayEnd time.Time) ([]models.AppointmentBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.AppointmentBooking
	for _, b := range m.bookings {
		if b.CaregiverID == caregiverID &&
			!b.StartAppointment.Before(dayStart) &&
			b.StartAppointment.Before(dayEnd) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockRepo) CreateBookingIfFree(_ context.Context, b *models.AppointmentBooking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.bookings {
		if existing.CaregiverID != b.CaregiverID || existing.BookingStatus == "rejected" {
			continue
		}
		if existing.StartAppointment.Before(b.EndAppointment) &&
			existing.EndAppointment.After(b.StartAppointment) {
			return httperr.ErrBusiness("slot_already_booked")
		}
	}

	m.nextID++
	b.ID = m.nextID
	clone := *b
	m.bookings[b.ID] = &clone
	return nil
}

func (m *mockRepo) GetBookingForCaregiver(_ context.Context, bookingID, caregiverID uint) (*models.AppointmentBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[bookingID]
	if !ok || b.CaregiverID != caregiverID {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (m *mockRepo) UpdateBooking(_ context.Context, b *models.AppointmentBooking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *b
	m.bookings[b.ID] = &clone
	return nil
}

func (m *mockRepo) SaveVerification(_ context.Context, userID uint, otp string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.codes[userID] = otp
	return nil
}

func (m *mockRepo) ConsumeVerification(_ context.Context, userID uint, otp string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.codes[userID]
	if !ok || stored != otp {
		return false, nil
	}
	delete(m.codes, userID)
	return true, nil
}

func (m *mockRepo) FeedbackExists(_ context.Context, _, _ uint) (bool, error) {
	return false, nil
}

func (m *mockRepo) ApplyFeedback(_ context.Context, _ *models.Feedback) (*models.FeedbackSummary, error) {
	return &models.FeedbackSummary{}, nil
}
