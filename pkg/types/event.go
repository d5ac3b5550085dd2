package types

import "time"

// CalendarEvent is a single event as returned by the calendar source.
// Zero-value timestamps mean the source did not provide them.
type CalendarEvent struct {
	Summary       string    `json:"summary"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Status        string    `json:"status,omitempty"`
	Description   string    `json:"description,omitempty"`
	AttendeeCount int       `json:"attendeeCount"`
}

// HasValidTimes reports whether the event carries a usable time range.
// An inverted range (end before start) counts as invalid and the
// analyzer falls back to a default duration.
func (e CalendarEvent) HasValidTimes() bool {
	return !e.Start.IsZero() && !e.End.IsZero() && !e.End.Before(e.Start)
}

// Contains reports whether t falls inside the event's time window.
func (e CalendarEvent) Contains(t time.Time) bool {
	if !e.HasValidTimes() {
		return false
	}
	return !t.Before(e.Start) && t.Before(e.End)
}

// Duration returns the event length. Callers must check HasValidTimes
// first; Duration on an invalid range returns 0.
func (e CalendarEvent) Duration() time.Duration {
	if !e.HasValidTimes() {
		return 0
	}
	return e.End.Sub(e.Start)
}

// DayWindow is the half-open [Start, End) range of a single day in the
// user's configured time zone.
type DayWindow struct {
	Start time.Time
	End   time.Time
}
