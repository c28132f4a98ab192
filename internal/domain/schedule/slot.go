package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// A slot is a 30-minute bookable interval identified by its start label
// "HH:MM". A canonical day has 48 of them.

const SlotMinutes = 30

const slotsPerDay = 24 * 60 / SlotMinutes

// AllSlots is the canonical 48-slot day, 00:00 through 23:30.
var AllSlots = func() []string {
	labels := make([]string, 0, slotsPerDay)
	for m := 0; m < 24*60; m += SlotMinutes {
		labels = append(labels, formatClock(m))
	}
	return labels
}()

func parseClock(label string) (int, error) {
	parts := strings.SplitN(label, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time label %q", label)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time label %q", label)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time label %q", label)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateSlots expands a template window into slot start labels, walking
// from start to end inclusive of both endpoints: an N-minute window yields
// floor(N/30)+1 labels. Downstream duration math relies on the final label
// marking one 30-minute step past the second-to-last, so the inclusive
// walk must not be changed to a half-open one. An end numerically earlier
// than the start wraps past midnight; labels are emitted modulo 24h.
func GenerateSlots(startTime, endTime string) []string {
	if startTime == "" || endTime == "" || startTime == endTime {
		return []string{}
	}

	start, err := parseClock(startTime)
	if err != nil {
		return []string{}
	}
	end, err := parseClock(endTime)
	if err != nil {
		return []string{}
	}

	if end < start {
		end += 24 * 60
	}

	slots := make([]string, 0, (end-start)/SlotMinutes+1)
	for t := start; t <= end; t += SlotMinutes {
		slots = append(slots, formatClock(t))
	}
	return slots
}

// expandClockWindow emits the half-open [start, start+window) expansion:
// one label per started 30-minute step.
func expandClockWindow(startMinutes, windowMinutes int) []string {
	if windowMinutes <= 0 {
		return nil
	}
	n := (windowMinutes + SlotMinutes - 1) / SlotMinutes
	labels := make([]string, 0, n)
	for i := 0; i < n; i++ {
		labels = append(labels, formatClock(startMinutes+i*SlotMinutes))
	}
	return labels
}

// ExpandInterval expands a booked [start, end) window into the slot labels
// it occupies, in UTC wall-clock terms.
func ExpandInterval(start, end time.Time) []string {
	minutes := int(end.Sub(start).Minutes())
	if minutes <= 0 {
		return nil
	}
	n := (minutes + SlotMinutes - 1) / SlotMinutes
	labels := make([]string, 0, n)
	for i := 0; i < n; i++ {
		labels = append(labels, start.UTC().Add(time.Duration(i*SlotMinutes)*time.Minute).Format("15:04"))
	}
	return labels
}

// SlotSet is exclusion-set membership over normalized slot labels.
type SlotSet map[string]struct{}

func NewSlotSet(labels ...string) SlotSet {
	s := make(SlotSet, len(labels))
	s.AddAll(labels)
	return s
}

func (s SlotSet) Add(label string) { s[label] = struct{}{} }
func (s SlotSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

func (s SlotSet) AddAll(labels []string) {
	for _, l := range labels {
		s[l] = struct{}{}
	}
}

// NormalizeSlots deduplicates and orders labels by time of day. Stored
// templates carry no ordering guarantee, so consumers that merge ranges
// go through here first.
func NormalizeSlots(labels []string) []string {
	set := NewSlotSet(labels...)
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := parseClock(out[i])
		b, _ := parseClock(out[j])
		return a < b
	})
	return out
}
