package timezone

import "time"

// Engine math and request parsing run in UTC. The TIMEZONE setting is
// validated at startup and falls back here when unusable.
const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}
