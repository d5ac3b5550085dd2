package analyzer

import (
	"strings"

	"github.com/mvdberg/calstatus/pkg/types"
)

// privacyKeywords is the denylist of summary substrings that mark an
// event as private. Matching is case-insensitive. A miss here is a
// correctness bug, not an error path, so the list errs on the side of
// redacting too much.
var privacyKeywords = []string{
	"therapy",
	"1:1",
	"one-on-one",
	"performance",
	"salary",
	"compensation",
	"hr",
	"interview",
	"doctor",
	"dentist",
	"medical",
	"personal",
}

// isPrivate reports whether the event summary matches the privacy
// denylist.
func isPrivate(e types.CalendarEvent) bool {
	summary := strings.ToLower(e.Summary)
	for _, kw := range privacyKeywords {
		if strings.Contains(summary, kw) {
			return true
		}
	}
	return false
}

// partition splits events into a visible view and a count of private
// events. Everything downstream of the analyzer operates on the
// visible slice only, so no later stage can reach private text even by
// accident. Input events are copied, never mutated.
func partition(events []types.CalendarEvent) (visible []types.CalendarEvent, private int) {
	visible = make([]types.CalendarEvent, 0, len(events))
	for _, e := range events {
		if isPrivate(e) {
			private++
			continue
		}
		visible = append(visible, e)
	}
	return visible, private
}
