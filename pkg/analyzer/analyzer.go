// Package analyzer turns a day's raw calendar events into a
// CalendarAnalysis: total meeting minutes, a density bucket, special
// condition flags, and the activity happening right now.
//
// Private events (summary matching the privacy denylist) are stripped
// from the working set before any other processing. They count toward
// TotalEvents and set HasPrivateMeetings, nothing else.
package analyzer

import (
	"sort"
	"strings"
	"time"

	"github.com/mvdberg/calstatus/pkg/types"
)

const (
	// workdayMinutes is the fixed working-day length the density
	// percentage is computed against.
	workdayMinutes = 480

	// defaultEventMinutes is charged for events with missing or
	// inverted timestamps. Malformed events never abort analysis.
	defaultEventMinutes = 30
)

// Density thresholds, percent of workdayMinutes. Strict inequalities:
// exactly 40% stays light, exactly 75% stays moderate.
const (
	heavyThresholdPct    = 75
	moderateThresholdPct = 40
)

var flagKeywords = struct {
	ooo    []string
	focus  []string
	travel []string
}{
	ooo:    []string{"ooo", "out of office"},
	focus:  []string{"focus", "do not disturb"},
	travel: []string{"travel", "flight", "train"},
}

var activityKeywords = []struct {
	activity types.Activity
	words    []string
}{
	{types.ActivityFocus, []string{"focus", "deep work"}},
	{types.ActivityDesign, []string{"design", "creative"}},
	{types.ActivityCoding, []string{"code", "development"}},
	{types.ActivityMeeting, []string{"meeting", "sync"}},
}

// Analyze derives a CalendarAnalysis from today's events. It is a pure
// function: events are not mutated and the same inputs always produce
// the same analysis.
func Analyze(events []types.CalendarEvent, now time.Time) types.CalendarAnalysis {
	visible, private := partition(events)

	analysis := types.CalendarAnalysis{
		TotalEvents:     len(events),
		CurrentActivity: types.ActivityWorking,
	}
	analysis.Flags.HasPrivateMeetings = private > 0

	for _, e := range visible {
		analysis.MeetingMinutes += eventMinutes(e)

		summary := strings.ToLower(e.Summary)
		if containsAny(summary, flagKeywords.ooo) {
			analysis.Flags.OOO = true
		}
		if containsAny(summary, flagKeywords.focus) {
			analysis.Flags.FocusTime = true
		}
		if containsAny(summary, flagKeywords.travel) {
			analysis.Flags.Traveling = true
		}
	}

	analysis.CurrentActivity = currentActivity(visible, now)
	analysis.Density = classifyDensity(analysis.MeetingMinutes)

	return analysis
}

func eventMinutes(e types.CalendarEvent) int {
	if !e.HasValidTimes() {
		return defaultEventMinutes
	}
	return int(e.Duration() / time.Minute)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// currentActivity classifies the earliest visible event whose window
// contains now. No containing event means the user is just working.
func currentActivity(visible []types.CalendarEvent, now time.Time) types.Activity {
	var containing []types.CalendarEvent
	for _, e := range visible {
		if e.Contains(now) {
			containing = append(containing, e)
		}
	}
	if len(containing) == 0 {
		return types.ActivityWorking
	}

	sort.SliceStable(containing, func(i, j int) bool {
		return containing[i].Start.Before(containing[j].Start)
	})

	summary := strings.ToLower(containing[0].Summary)
	for _, ak := range activityKeywords {
		if containsAny(summary, ak.words) {
			return ak.activity
		}
	}
	return types.ActivityWorking
}

func classifyDensity(meetingMinutes int) types.Density {
	// Integer comparison so the exact 40% / 75% boundaries stay in the
	// lower tier (minutes/480*100 > threshold, cross-multiplied).
	switch {
	case meetingMinutes*100 > heavyThresholdPct*workdayMinutes:
		return types.DensityHeavy
	case meetingMinutes*100 > moderateThresholdPct*workdayMinutes:
		return types.DensityModerate
	default:
		return types.DensityLight
	}
}
