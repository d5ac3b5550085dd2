package analyzer

import (
	"reflect"
	"testing"
	"time"

	"github.com/mvdberg/calstatus/pkg/types"
)

var day = time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func event(summary string, start, end time.Time) types.CalendarEvent {
	return types.CalendarEvent{Summary: summary, Start: start, End: end}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze(nil, at(12, 0))

	if a.TotalEvents != 0 {
		t.Errorf("TotalEvents = %d, want 0", a.TotalEvents)
	}
	if a.MeetingMinutes != 0 {
		t.Errorf("MeetingMinutes = %d, want 0", a.MeetingMinutes)
	}
	if a.Density != types.DensityLight {
		t.Errorf("Density = %s, want light", a.Density)
	}
	if a.Flags != (types.Flags{}) {
		t.Errorf("Flags = %+v, want all false", a.Flags)
	}
	if a.CurrentActivity != types.ActivityWorking {
		t.Errorf("CurrentActivity = %s, want working", a.CurrentActivity)
	}
}

func TestAnalyzeMeetingMinutes(t *testing.T) {
	tests := []struct {
		name   string
		events []types.CalendarEvent
		want   int
	}{
		{
			name: "exact sum of valid durations",
			events: []types.CalendarEvent{
				event("Team Sync", at(9, 0), at(10, 0)),
				event("Planning", at(10, 0), at(11, 30)),
			},
			want: 150,
		},
		{
			name: "missing end contributes default",
			events: []types.CalendarEvent{
				event("Team Sync", at(9, 0), time.Time{}),
			},
			want: 30,
		},
		{
			name: "missing both timestamps contributes default",
			events: []types.CalendarEvent{
				event("Team Sync", time.Time{}, time.Time{}),
			},
			want: 30,
		},
		{
			name: "inverted range contributes default",
			events: []types.CalendarEvent{
				event("Team Sync", at(10, 0), at(9, 0)),
			},
			want: 30,
		},
		{
			name: "mixed valid and malformed",
			events: []types.CalendarEvent{
				event("Team Sync", at(9, 0), at(10, 0)),
				event("Standup", time.Time{}, at(10, 15)),
			},
			want: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.events, at(12, 0))
			if a.MeetingMinutes != tt.want {
				t.Errorf("MeetingMinutes = %d, want %d", a.MeetingMinutes, tt.want)
			}
		})
	}
}

func TestAnalyzeDensityBoundaries(t *testing.T) {
	// Density is computed against a 480-minute workday with strict
	// thresholds: exactly 40% stays light, exactly 75% stays moderate.
	tests := []struct {
		minutes int
		want    types.Density
	}{
		{0, types.DensityLight},
		{192, types.DensityLight},    // exactly 40%
		{193, types.DensityModerate}, // just over 40%
		{360, types.DensityModerate}, // exactly 75%
		{361, types.DensityHeavy},    // just over 75%
		{480, types.DensityHeavy},
	}

	for _, tt := range tests {
		events := []types.CalendarEvent{
			event("Big Meeting", at(8, 0), at(8, 0).Add(time.Duration(tt.minutes)*time.Minute)),
		}
		a := Analyze(events, at(7, 0))
		if a.Density != tt.want {
			t.Errorf("%d minutes: Density = %s, want %s", tt.minutes, a.Density, tt.want)
		}
	}
}

func TestAnalyzeFlags(t *testing.T) {
	tests := []struct {
		summary string
		want    types.Flags
	}{
		{"OOO - vacation", types.Flags{OOO: true}},
		{"Out of Office", types.Flags{OOO: true}},
		{"Focus block", types.Flags{FocusTime: true}},
		{"Do Not Disturb", types.Flags{FocusTime: true}},
		{"Travel to Berlin", types.Flags{Traveling: true}},
		{"Flight AMS-BER", types.Flags{Traveling: true}},
		{"Train to Utrecht", types.Flags{Traveling: true}},
		{"Weekly planning", types.Flags{}},
	}

	for _, tt := range tests {
		a := Analyze([]types.CalendarEvent{event(tt.summary, at(9, 0), at(10, 0))}, at(12, 0))
		if a.Flags != tt.want {
			t.Errorf("%q: Flags = %+v, want %+v", tt.summary, a.Flags, tt.want)
		}
	}
}

func TestAnalyzeFlagsAccumulateIndependently(t *testing.T) {
	// A single event can set several flags, and flags from different
	// events all stick. No if/else shadowing between flag checks.
	events := []types.CalendarEvent{
		event("OOO - travel day", at(9, 0), at(17, 0)),
		event("Focus time", at(9, 0), at(11, 0)),
	}

	a := Analyze(events, at(12, 0))
	want := types.Flags{OOO: true, FocusTime: true, Traveling: true}
	if a.Flags != want {
		t.Errorf("Flags = %+v, want %+v", a.Flags, want)
	}
}

func TestAnalyzeCurrentActivity(t *testing.T) {
	tests := []struct {
		name   string
		events []types.CalendarEvent
		now    time.Time
		want   types.Activity
	}{
		{
			name:   "no containing event",
			events: []types.CalendarEvent{event("Design Review", at(9, 0), at(10, 0))},
			now:    at(14, 0),
			want:   types.ActivityWorking,
		},
		{
			name:   "focus keywords",
			events: []types.CalendarEvent{event("Deep Work", at(9, 0), at(11, 0))},
			now:    at(10, 0),
			want:   types.ActivityFocus,
		},
		{
			name:   "design keywords",
			events: []types.CalendarEvent{event("Creative session", at(9, 0), at(11, 0))},
			now:    at(10, 0),
			want:   types.ActivityDesign,
		},
		{
			name:   "coding keywords",
			events: []types.CalendarEvent{event("Pairing on code", at(9, 0), at(11, 0))},
			now:    at(10, 0),
			want:   types.ActivityCoding,
		},
		{
			name:   "meeting keywords",
			events: []types.CalendarEvent{event("Team Sync", at(9, 0), at(11, 0))},
			now:    at(10, 0),
			want:   types.ActivityMeeting,
		},
		{
			name:   "containing event without keywords",
			events: []types.CalendarEvent{event("Lunch", at(12, 0), at(13, 0))},
			now:    at(12, 30),
			want:   types.ActivityWorking,
		},
		{
			name: "earliest containing event wins",
			events: []types.CalendarEvent{
				event("Design Review", at(10, 0), at(12, 0)),
				event("Code Review", at(9, 0), at(12, 0)),
			},
			now:  at(11, 0),
			want: types.ActivityCoding,
		},
		{
			name: "window end is exclusive",
			events: []types.CalendarEvent{
				event("Design Review", at(9, 0), at(10, 0)),
			},
			now:  at(10, 0),
			want: types.ActivityWorking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.events, tt.now)
			if a.CurrentActivity != tt.want {
				t.Errorf("CurrentActivity = %s, want %s", a.CurrentActivity, tt.want)
			}
		})
	}
}

func TestAnalyzeEndToEndScenario(t *testing.T) {
	// 09:00-10:00 Team Sync (60), 10:00-12:00 private 1:1 (excluded),
	// 14:00-15:30 Design Review (90), now inside the design review.
	events := []types.CalendarEvent{
		event("Team Sync", at(9, 0), at(10, 0)),
		event("1:1 with manager", at(10, 0), at(12, 0)),
		event("Design Review", at(14, 0), at(15, 30)),
	}

	a := Analyze(events, at(14, 30))

	if a.TotalEvents != 3 {
		t.Errorf("TotalEvents = %d, want 3", a.TotalEvents)
	}
	if a.MeetingMinutes != 150 {
		t.Errorf("MeetingMinutes = %d, want 150 (private event excluded)", a.MeetingMinutes)
	}
	if !a.Flags.HasPrivateMeetings {
		t.Error("HasPrivateMeetings should be set")
	}
	if a.CurrentActivity != types.ActivityDesign {
		t.Errorf("CurrentActivity = %s, want design", a.CurrentActivity)
	}
	if a.Density != types.DensityLight {
		t.Errorf("Density = %s, want light (150/480 = 31.25%%)", a.Density)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	events := []types.CalendarEvent{
		event("Team Sync", at(9, 0), at(10, 0)),
		event("1:1 with manager", at(10, 0), at(12, 0)),
		event("Flight AMS-BER", at(16, 0), at(18, 0)),
	}
	now := at(9, 30)

	first := Analyze(events, now)
	second := Analyze(events, now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	events := []types.CalendarEvent{
		event("Team Sync", at(9, 0), at(10, 0)),
		event("Salary Review", at(10, 0), at(11, 0)),
	}
	snapshot := make([]types.CalendarEvent, len(events))
	copy(snapshot, events)

	Analyze(events, at(9, 30))

	if !reflect.DeepEqual(events, snapshot) {
		t.Error("Analyze mutated its input slice")
	}
}
