package validators

import "testing"

func TestIsWeekday(t *testing.T) {
	for _, name := range []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	} {
		if !IsWeekday(name) {
			t.Errorf("expected %s to be valid", name)
		}
	}

	for _, name := range []string{"monday", "MONDAY", "Mon", "Weekend", ""} {
		if IsWeekday(name) {
			t.Errorf("expected %q to be invalid", name)
		}
	}
}

func TestIsClockLabel(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, label := range valid {
		if !IsClockLabel(label) {
			t.Errorf("expected %q to be valid", label)
		}
	}

	invalid := []string{"24:00", "9:30", "09:5", "09:60", "0930", "ab:cd", ""}
	for _, label := range invalid {
		if IsClockLabel(label) {
			t.Errorf("expected %q to be invalid", label)
		}
	}
}
