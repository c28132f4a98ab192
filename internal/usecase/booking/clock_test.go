package booking

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
)

func setupClock(status string) (*Clock, *mockRepo, uint) {
	repo := newMockRepo()
	id := seedBooking(repo, status)
	return NewClock(repo, testDispatcher(), zap.NewNop()), repo, id
}

func TestClock_FullFlow(t *testing.T) {
	uc, repo, id := setupClock("approved")
	ctx := context.Background()

	if err := uc.RequestClockIn(ctx, ClockInput{CaregiverID: 1, BookingID: id}); err != nil {
		t.Fatalf("RequestClockIn failed: %v", err)
	}

	otp, ok := repo.codes[42]
	if !ok || len(otp) != 4 {
		t.Fatalf("expected a stored 4-digit code for the patient, got %q", otp)
	}

	b, err := uc.VerifyClockIn(ctx, ClockInput{CaregiverID: 1, BookingID: id, OTP: otp})
	if err != nil {
		t.Fatalf("VerifyClockIn failed: %v", err)
	}
	if b.BookingStatus != "started" {
		t.Errorf("expected started, got %s", b.BookingStatus)
	}

	b, err = uc.ClockOut(ctx, ClockInput{CaregiverID: 1, BookingID: id})
	if err != nil {
		t.Fatalf("ClockOut failed: %v", err)
	}
	if b.BookingStatus != "finished" {
		t.Errorf("expected finished, got %s", b.BookingStatus)
	}
}

func TestClock_RequestNeedsApprovedBooking(t *testing.T) {
	for _, status := range []string{"pending", "rejected", "started", "finished"} {
		uc, _, id := setupClock(status)

		err := uc.RequestClockIn(context.Background(), ClockInput{CaregiverID: 1, BookingID: id})
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("status %q: expected invalid_state, got %v", status, err)
		}
	}
}

func TestClock_WrongOTP(t *testing.T) {
	uc, repo, id := setupClock("approved")
	ctx := context.Background()

	if err := uc.RequestClockIn(ctx, ClockInput{CaregiverID: 1, BookingID: id}); err != nil {
		t.Fatalf("RequestClockIn failed: %v", err)
	}

	_, err := uc.VerifyClockIn(ctx, ClockInput{CaregiverID: 1, BookingID: id, OTP: "xxxx"})
	if !httperr.IsBusiness(err, "invalid_otp") {
		t.Errorf("expected invalid_otp, got %v", err)
	}

	// the failed attempt must not consume the code
	otp := repo.codes[42]
	if _, err := uc.VerifyClockIn(ctx, ClockInput{CaregiverID: 1, BookingID: id, OTP: otp}); err != nil {
		t.Errorf("correct code should still verify, got %v", err)
	}
}

func TestClock_CodeIsSingleUse(t *testing.T) {
	uc, repo, id := setupClock("approved")
	ctx := context.Background()

	if err := uc.RequestClockIn(ctx, ClockInput{CaregiverID: 1, BookingID: id}); err != nil {
		t.Fatalf("RequestClockIn failed: %v", err)
	}
	otp := repo.codes[42]

	if _, err := uc.VerifyClockIn(ctx, ClockInput{CaregiverID: 1, BookingID: id, OTP: otp}); err != nil {
		t.Fatalf("VerifyClockIn failed: %v", err)
	}

	_, err := uc.VerifyClockIn(ctx, ClockInput{CaregiverID: 1, BookingID: id, OTP: otp})
	if !httperr.IsBusiness(err, "invalid_otp") {
		t.Errorf("expected reused code to fail with invalid_otp, got %v", err)
	}
}

func TestClock_BookingNotFound(t *testing.T) {
	uc, _, _ := setupClock("approved")

	err := uc.RequestClockIn(context.Background(), ClockInput{CaregiverID: 9, BookingID: 1})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Errorf("expected booking_not_found, got %v", err)
	}
}

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		otp, err := generateOTP()
		if err != nil {
			t.Fatalf("generateOTP failed: %v", err)
		}
		if len(otp) != 4 {
			t.Fatalf("expected 4 digits, got %q", otp)
		}
		for _, r := range otp {
			if r < '0' || r > '9' {
				t.Fatalf("expected digits only, got %q", otp)
			}
		}
		seen[otp] = true
	}
	if len(seen) < 2 {
		t.Error("expected some variation across generated codes")
	}
}
