// Package calendar fetches the user's events for a single day from an
// iCalendar feed.
package calendar

import (
	"context"

	"github.com/mvdberg/calstatus/pkg/types"
)

// Source returns the calendar events overlapping a day window. A
// failed fetch returns an error; callers degrade to an empty event
// list rather than aborting the run.
type Source interface {
	Events(ctx context.Context, window types.DayWindow) ([]types.CalendarEvent, error)
}
