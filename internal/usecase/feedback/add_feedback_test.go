package feedback

import (
	"context"
	"sync"
	"testing"
	"time"

	domainfb "github.com/CareBridgeServices/care-scheduler/internal/domain/feedback"
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// mockRepo covers the three repository calls the feedback use case makes,
// with the same per-caregiver atomicity the gorm implementation gives.
type mockRepo struct {
	mu sync.Mutex

	caregivers map[uint]bool
	feedback   []models.Feedback
	summaries  map[uint]*models.FeedbackSummary
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		caregivers: make(map[uint]bool),
		summaries:  make(map[uint]*models.FeedbackSummary),
	}
}

func (m *mockRepo) GetCaregiverDetail(_ context.Context, _ uint) (*models.CaregiverDetail, error) {
	return nil, nil
}

func (m *mockRepo) CaregiverExists(_ context.Context, caregiverID uint) (bool, error) {
	return m.caregivers[caregiverID], nil
}

func (m *mockRepo) GetMember(_ context.Context, _, _ uint) (*models.PatientMember, error) {
	return nil, nil
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

func (m *mockRepo) ListBookingsForDay(_ context.Context, _ uint, _, _ time.Time) ([]models.AppointmentBooking, error) {
	return nil, nil
}

func (m *mockRepo) CreateBookingIfFree(_ context.Context, _ *models.AppointmentBooking) error {
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

func (m *mockRepo) FeedbackExists(_ context.Context, userID, appointmentID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, fb := range m.feedback {
		if fb.UserID == userID && fb.AppointmentID == appointmentID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) ApplyFeedback(_ context.Context, fb *models.Feedback) (*models.FeedbackSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.feedback = append(m.feedback, *fb)

	s, ok := m.summaries[fb.CaregiverID]
	if !ok {
		s = &models.FeedbackSummary{CaregiverID: fb.CaregiverID}
		m.summaries[fb.CaregiverID] = s
	}
	domainfb.Apply(s, fb.Rate)

	clone := *s
	return &clone, nil
}

// ── tests ──

func TestAddFeedback_Sequence(t *testing.T) {
	repo := newMockRepo()
	repo.caregivers[1] = true
	uc := NewAddFeedback(repo)

	rates := []float64{5, 5, 5, 4}
	var last *AddFeedbackResult

	for i, rate := range rates {
		var err error
		last, err = uc.Execute(context.Background(), AddFeedbackInput{
			CaregiverID:   1,
			UserID:        uint(100 + i),
			AppointmentID: uint(i + 1),
			Rate:          rate,
		})
		if err != nil {
			t.Fatalf("rating %d failed: %v", i, err)
		}
	}

	if last.Summary.TotalFeedback != 4 {
		t.Errorf("expected total_feedback 4, got %d", last.Summary.TotalFeedback)
	}
	if last.Summary.TotalRates != 19 {
		t.Errorf("expected total_rates 19, got %v", last.Summary.TotalRates)
	}
	if last.Summary.AverageRates != 4.5 {
		t.Errorf("expected average_rates 4.5, got %v", last.Summary.AverageRates)
	}
}

func TestAddFeedback_UnknownCaregiver(t *testing.T) {
	uc := NewAddFeedback(newMockRepo())

	_, err := uc.Execute(context.Background(), AddFeedbackInput{
		CaregiverID:   9,
		UserID:        1,
		AppointmentID: 1,
		Rate:          5,
	})
	if !httperr.IsBusiness(err, "invalid_caregiver") {
		t.Errorf("expected invalid_caregiver, got %v", err)
	}
}

func TestAddFeedback_Duplicate(t *testing.T) {
	repo := newMockRepo()
	repo.caregivers[1] = true
	uc := NewAddFeedback(repo)

	in := AddFeedbackInput{CaregiverID: 1, UserID: 42, AppointmentID: 5, Rate: 4}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first rating failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "feedback_exists") {
		t.Errorf("expected feedback_exists, got %v", err)
	}
}

// Ratings from many patients arriving at once must all be counted.
func TestAddFeedback_ConcurrentRatings(t *testing.T) {
	repo := newMockRepo()
	repo.caregivers[1] = true
	uc := NewAddFeedback(repo)

	const raters = 20

	var wg sync.WaitGroup
	for i := 0; i < raters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), AddFeedbackInput{
				CaregiverID:   1,
				UserID:        uint(i + 1),
				AppointmentID: uint(i + 1),
				Rate:          4,
			})
			if err != nil {
				t.Errorf("rating %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	s := repo.summaries[1]
	if s.TotalFeedback != raters {
		t.Errorf("expected %d ratings counted, got %d", raters, s.TotalFeedback)
	}
	if s.TotalRates != float64(raters*4) {
		t.Errorf("expected total %d, got %v", raters*4, s.TotalRates)
	}
	if s.AverageRates != 4 {
		t.Errorf("expected average 4, got %v", s.AverageRates)
	}
}
