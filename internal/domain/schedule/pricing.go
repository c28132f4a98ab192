package schedule

import (
	"math"
	"strings"
	"time"

	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

const (
	BandStandard    = "standard"
	BandNonStandard = "nonstandard"
)

// Output tags keep the wire spelling of the band names.
const (
	TagStandard    = "standard"
	TagNonStandard = "non-standard"
)

// RatePair is the standard/nonstandard rate-card pair of one day-type.
// Either side may be nil when pricing is not configured.
type RatePair struct {
	Standard    *models.RateCard
	NonStandard *models.RateCard
}

func (p RatePair) Complete() bool {
	return p.Standard != nil && p.NonStandard != nil
}

// PairFor picks the rate-card pair of a resolved day-type out of the full
// card list.
func PairFor(cards []models.RateCard, dayType DayType) RatePair {
	var pair RatePair
	for i := range cards {
		if cards[i].DayType != string(dayType) {
			continue
		}
		switch cards[i].Band {
		case BandStandard:
			pair.Standard = &cards[i]
		case BandNonStandard:
			pair.NonStandard = &cards[i]
		}
	}
	return pair
}

// ApplyRates stamps band and price onto each slot. With an incomplete
// pair the slots stay unpriced rather than failing the request. The
// standard band is applied first and the nonstandard band second; a slot
// matching both ends up tagged non-standard. That override order is part
// of the output contract.
func ApplyRates(slots []SlotStatus, pair RatePair) []SlotStatus {
	if !pair.Complete() {
		return slots
	}
	stampBand(slots, pair.Standard, TagStandard)
	stampBand(slots, pair.NonStandard, TagNonStandard)
	return slots
}

func stampBand(slots []SlotStatus, card *models.RateCard, tag string) {
	bandStart, err := clockHours(card.StartTime)
	if err != nil {
		return
	}
	bandEnd, err := clockHours(card.EndTime)
	if err != nil {
		return
	}

	for i := range slots {
		parts := strings.Split(slots[i].StartDate, " ")
		if len(parts) != 2 {
			continue
		}
		start, err := clockHours(parts[1])
		if err != nil {
			continue
		}
		if !bandMatches(start, bandStart, bandEnd) {
			continue
		}
		perHour := Round2(card.PricePerHour)
		perSlot := Round2(card.PricePerHour / 2)
		slots[i].PricePerHour = &perHour
		slots[i].PricePerSlot = &perSlot
		slots[i].Type = tag
	}
}

// bandMatches tests a fractional start hour against [bandStart, bandEnd),
// wrapping when the band crosses midnight.
func bandMatches(start, bandStart, bandEnd float64) bool {
	if bandStart <= bandEnd {
		return start >= bandStart && start < bandEnd
	}
	return start >= bandStart || start < bandEnd
}

func clockHours(label string) (float64, error) {
	minutes, err := parseClock(label)
	if err != nil {
		return 0, err
	}
	return float64(minutes) / 60, nil
}

// Hours is the wall-clock duration of a booking in hours.
func Hours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
