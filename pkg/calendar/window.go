package calendar

import (
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/mvdberg/calstatus/pkg/types"
)

// Today returns the local-midnight-to-next-midnight window for the
// given moment in the named IANA time zone.
func Today(now time.Time, timezone string) (types.DayWindow, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return types.DayWindow{}, pkgerrors.Wrapf(err, "unknown time zone %q", timezone)
	}

	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return types.DayWindow{Start: start, End: start.AddDate(0, 0, 1)}, nil
}
