package feedback

import (
	"math"

	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// Apply folds one rating into a caregiver's running summary. The average
// is rounded down to the whole point and bumped by half a point when the
// exact fractional remainder reaches 0.5. The quotient is evaluated in
// integer tenths so that ratings like 4.45 never drift across the half
// boundary the way repeated float math does.
func Apply(s *models.FeedbackSummary, rate float64) {
	s.TotalFeedback++
	s.TotalRates += rate
	s.AverageRates = HalfPointAverage(s.TotalRates, s.TotalFeedback)
}

// HalfPointAverage is total/count rounded to the nearest half point,
// half-up: floor the quotient, then add 0.5 iff the remainder is >= 0.5.
// Returns 0 for an empty summary.
func HalfPointAverage(total float64, count int) float64 {
	if count <= 0 {
		return 0
	}

	tenths := int64(math.Round(total * 10))
	denom := int64(count) * 10

	whole := tenths / denom
	remainder := tenths - whole*denom

	if remainder*2 >= denom {
		return float64(whole) + 0.5
	}
	return float64(whole)
}
