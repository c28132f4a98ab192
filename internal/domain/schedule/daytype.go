package schedule

import "time"

// DayType classifies a calendar date for pricing. Holiday wins over the
// weekday/weekend split.
type DayType string

const (
	DayWeekday  DayType = "weekday"
	DaySaturday DayType = "saturday"
	DaySunday   DayType = "sunday"
	DayHoliday  DayType = "holiday"
)

var weekdayNames = map[string]struct{}{
	"Sunday": {}, "Monday": {}, "Tuesday": {}, "Wednesday": {},
	"Thursday": {}, "Friday": {}, "Saturday": {},
}

func IsWeekdayName(name string) bool {
	_, ok := weekdayNames[name]
	return ok
}

func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

func ResolveDayType(weekday string, isHoliday bool) DayType {
	switch {
	case isHoliday:
		return DayHoliday
	case weekday == "Sunday":
		return DaySunday
	case weekday == "Saturday":
		return DaySaturday
	default:
		return DayWeekday
	}
}
