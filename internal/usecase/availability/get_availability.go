package availability

import (
	"context"
	"time"

	"github.com/CareBridgeServices/care-scheduler/internal/domain/schedule"
	"github.com/CareBridgeServices/care-scheduler/internal/dto"
)

type GetAvailability struct {
	repo schedule.Repository
}

func NewGetAvailability(repo schedule.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

type Input struct {
	CaregiverID uint
	Date        time.Time
}

// Execute derives one calendar day of bookable half-hour slots:
// weekly template minus ad-hoc block-outs minus already-booked windows,
// each remaining slot stamped with the day-type's price band. The holiday
// flag changes pricing only, never slot membership.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in Input,
) (*dto.AvailabilityDayDTO, error) {

	day := in.Date.UTC()
	date := day.Format("2006-01-02")
	weekday := schedule.WeekdayName(day)

	isHoliday, err := uc.repo.HasHoliday(ctx, date)
	if err != nil {
		return nil, err
	}

	out := &dto.AvailabilityDayDTO{
		CaregiverID:      in.CaregiverID,
		AvailabilityDate: date,
		Weekday:          weekday,
		IsHoliday:        isHoliday,
		Slots:            []schedule.SlotStatus{},
	}

	tpl, err := uc.repo.GetWeeklyAvailability(ctx, in.CaregiverID, weekday)
	if err != nil {
		return nil, err
	}
	if tpl == nil || len(tpl.AvailabilitySlots) == 0 {
		// no template for this weekday: fully unavailable, not an error
		return out, nil
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForDay(ctx, in.CaregiverID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	booked := schedule.BookedSlots(bookings)

	ranges, err := uc.repo.ListUnavailability(ctx, in.CaregiverID)
	if err != nil {
		return nil, err
	}
	adhoc := make(schedule.SlotSet)
	for _, r := range ranges {
		adhoc.AddAll(schedule.ExpandUnavailability(r, date))
	}

	statuses := schedule.BuildStatuses(date, tpl.AvailabilitySlots, adhoc, booked)

	cards, err := uc.repo.ListRateCards(ctx)
	if err != nil {
		return nil, err
	}
	pair := schedule.PairFor(cards, schedule.ResolveDayType(weekday, isHoliday))
	out.Slots = schedule.ApplyRates(statuses, pair)

	return out, nil
}
