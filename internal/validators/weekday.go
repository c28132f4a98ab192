package validators

import (
	"strconv"
	"strings"
)

var weekdays = map[string]struct{}{
	"Sunday": {}, "Monday": {}, "Tuesday": {}, "Wednesday": {},
	"Thursday": {}, "Friday": {}, "Saturday": {},
}

// IsWeekday accepts only the seven canonical English weekday names.
func IsWeekday(name string) bool {
	_, ok := weekdays[name]
	return ok
}

// IsClockLabel accepts "HH:MM" 24h labels, 00:00 through 23:59.
func IsClockLabel(label string) bool {
	parts := strings.SplitN(label, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return false
	}
	return true
}
