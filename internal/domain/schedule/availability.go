package schedule

import (
	"time"

	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

const (
	SlotAvailable   = "available"
	SlotUnavailable = "unavailable"
)

// SlotStatus is one half-hour slot of an availability day, optionally
// stamped with a price band by ApplyRates.
type SlotStatus struct {
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Availability bool     `json:"availability"`
	Status       string   `json:"status"`
	PricePerHour *float64 `json:"price_perhour,omitempty"`
	PricePerSlot *float64 `json:"price_perslot,omitempty"`
	Type         string   `json:"type,omitempty"`
}

// BuildStatuses marks each template slot of the given date available
// unless it appears in the ad-hoc or booked exclusion sets. Holiday state
// never removes a slot; it only changes pricing.
func BuildStatuses(date string, template []string, adhoc, booked SlotSet) []SlotStatus {
	slots := NormalizeSlots(template)
	statuses := make([]SlotStatus, 0, len(slots))

	for _, slot := range slots {
		start, err := time.Parse("2006-01-02 15:04", date+" "+slot)
		if err != nil {
			continue
		}
		available := !adhoc.Has(slot) && !booked.Has(slot)
		status := SlotAvailable
		if !available {
			status = SlotUnavailable
		}
		statuses = append(statuses, SlotStatus{
			StartDate:    start.Format("2006-01-02 15:04"),
			EndDate:      start.Add(SlotMinutes * time.Minute).Format("2006-01-02 15:04"),
			Availability: available,
			Status:       status,
		})
	}
	return statuses
}

// ExpandUnavailability computes the overlap of one block-out range with
// the target date and returns the excluded slot labels. The four cases
// are disjoint: same-day range, range starting on the date, range ending
// on the date, and the date strictly inside the range (whole day out).
func ExpandUnavailability(r models.UnavailabilityRange, date string) []string {
	startDate := r.StartDate.UTC().Format("2006-01-02")
	endDate := r.EndDate.UTC().Format("2006-01-02")

	startClock := r.StartDate.UTC().Hour()*60 + r.StartDate.UTC().Minute()
	endClock := r.EndDate.UTC().Hour()*60 + r.EndDate.UTC().Minute()

	switch {
	case startDate == date && endDate == date:
		return expandClockWindow(startClock, endClock-startClock)
	case startDate == date:
		return expandClockWindow(startClock, 24*60-startClock)
	case endDate == date:
		return expandClockWindow(0, endClock)
	case startDate < date && date < endDate:
		return AllSlots
	}
	return nil
}

// BookedSlots expands every booking that starts on the target date into
// the labels it occupies. Status is deliberately ignored here: the
// availability view treats any persisted booking as blocking, while the
// conflict guard is the one that discriminates rejected bookings.
func BookedSlots(bookings []models.AppointmentBooking) SlotSet {
	booked := make(SlotSet)
	for _, b := range bookings {
		booked.AddAll(ExpandInterval(b.StartAppointment, b.EndAppointment))
	}
	return booked
}
