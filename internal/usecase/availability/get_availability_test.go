package availability

import (
	"context"
	"reflect"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/CareBridgeServices/care-scheduler/internal/domain/schedule"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func mondayTemplate() *models.WeeklyAvailability {
	return &models.WeeklyAvailability{
		CaregiverID:       1,
		WeekDay:           "Monday",
		StartTime:         "09:00",
		EndTime:           "17:00",
		AvailabilitySlots: datatypes.JSONSlice[string](schedule.GenerateSlots("09:00", "17:00")),
	}
}

func weekdayCards() []models.RateCard {
	return []models.RateCard{
		{DayType: "weekday", Band: schedule.BandStandard, PricePerHour: 20, StartTime: "08:00", EndTime: "18:00"},
		{DayType: "weekday", Band: schedule.BandNonStandard, PricePerHour: 12, StartTime: "18:00", EndTime: "08:00"},
		{DayType: "holiday", Band: schedule.BandStandard, PricePerHour: 40, StartTime: "08:00", EndTime: "18:00"},
		{DayType: "holiday", Band: schedule.BandNonStandard, PricePerHour: 25, StartTime: "18:00", EndTime: "08:00"},
	}
}

func TestGetAvailability_FullDay(t *testing.T) {
	repo := newMockRepo()
	repo.templates["Monday"] = mondayTemplate()
	repo.rateCards = weekdayCards()
	repo.unavailability = []models.UnavailabilityRange{
		{CaregiverID: 1, StartDate: monday.Add(12 * time.Hour), EndDate: monday.Add(13 * time.Hour)},
	}
	repo.bookings = []models.AppointmentBooking{
		{
			CaregiverID:      1,
			StartAppointment: monday.Add(10 * time.Hour),
			EndAppointment:   monday.Add(10*time.Hour + 30*time.Minute),
			BookingStatus:    "pending",
		},
	}

	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), Input{CaregiverID: 1, Date: monday})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if out.AvailabilityDate != "2026-03-02" || out.Weekday != "Monday" {
		t.Errorf("unexpected day header: %s %s", out.AvailabilityDate, out.Weekday)
	}
	if out.IsHoliday {
		t.Error("expected non-holiday day")
	}
	if len(out.Slots) != 17 {
		t.Fatalf("expected 17 slots from the 09:00-17:00 template, got %d", len(out.Slots))
	}

	unavailable := map[string]bool{}
	for _, s := range out.Slots {
		if !s.Availability {
			unavailable[s.StartDate] = true
		}
		if s.PricePerHour == nil {
			t.Errorf("slot %s: expected a stamped price", s.StartDate)
		}
	}

	want := map[string]bool{
		"2026-03-02 10:00": true,
		"2026-03-02 12:00": true,
		"2026-03-02 12:30": true,
	}
	if !reflect.DeepEqual(unavailable, want) {
		t.Errorf("expected unavailable %v, got %v", want, unavailable)
	}
}

func TestGetAvailability_Idempotent(t *testing.T) {
	repo := newMockRepo()
	repo.templates["Monday"] = mondayTemplate()
	repo.rateCards = weekdayCards()

	uc := NewGetAvailability(repo)

	first, err := uc.Execute(context.Background(), Input{CaregiverID: 1, Date: monday})
	if err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}
	second, err := uc.Execute(context.Background(), Input{CaregiverID: 1, Date: monday})
	if err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output for identical inputs")
	}
}

func TestGetAvailability_EmptyTemplate(t *testing.T) {
	repo := newMockRepo()
	repo.rateCards = weekdayCards()

	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), Input{CaregiverID: 1, Date: monday})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(out.Slots) != 0 {
		t.Errorf("expected no slots without a template, got %d", len(out.Slots))
	}
	if out.Slots == nil {
		t.Error("slots must be an empty list, not null")
	}
}

func TestGetAvailability_HolidayRepricesOnly(t *testing.T) {
	repo := newMockRepo()
	repo.templates["Monday"] = mondayTemplate()
	repo.rateCards = weekdayCards()
	repo.holidays["2026-03-02"] = true

	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), Input{CaregiverID: 1, Date: monday})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !out.IsHoliday {
		t.Fatal("expected holiday flag")
	}
	if len(out.Slots) != 17 {
		t.Fatalf("holiday must not remove slots, got %d", len(out.Slots))
	}

	for _, s := range out.Slots {
		if s.StartDate == "2026-03-02 09:00" {
			if s.PricePerHour == nil || *s.PricePerHour != 40 {
				t.Errorf("expected holiday standard rate 40, got %v", s.PricePerHour)
			}
		}
	}
}

func TestGetAvailability_WholeDayBlockOut(t *testing.T) {
	repo := newMockRepo()
	repo.templates["Monday"] = mondayTemplate()
	repo.rateCards = weekdayCards()
	repo.unavailability = []models.UnavailabilityRange{
		{
			CaregiverID: 1,
			StartDate:   monday.AddDate(0, 0, -1),
			EndDate:     monday.AddDate(0, 0, 2),
		},
	}

	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), Input{CaregiverID: 1, Date: monday})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, s := range out.Slots {
		if s.Availability {
			t.Errorf("slot %s: expected whole day blocked", s.StartDate)
		}
	}
}
