// Package composer turns a CalendarAnalysis into a presence Status by
// walking an ordered rule cascade and drawing a random phrasing from
// the matched theme's pool.
package composer

import (
	"math/rand"

	"github.com/mvdberg/calstatus/pkg/types"
)

// rule pairs a predicate with the pool used when it matches. Rules are
// evaluated in order and the first match wins, which makes precedence
// (privacy redaction ahead of every content-revealing rule) explicit.
type rule struct {
	matches func(types.CalendarAnalysis) bool
	pool    Pool
}

var cascade = []rule{
	{func(a types.CalendarAnalysis) bool { return a.Flags.OOO }, poolOOO},
	// Privacy outranks everything below: once a private meeting
	// exists, nothing beyond "busy" may be inferable from the status.
	{func(a types.CalendarAnalysis) bool { return a.Flags.HasPrivateMeetings }, poolPrivate},
	{func(a types.CalendarAnalysis) bool { return a.Flags.Traveling }, poolTravel},
	{func(a types.CalendarAnalysis) bool { return a.Flags.FocusTime }, poolFocus},
	{func(a types.CalendarAnalysis) bool { return a.CurrentActivity == types.ActivityDesign }, poolDesign},
	{func(a types.CalendarAnalysis) bool { return a.CurrentActivity == types.ActivityCoding }, poolCoding},
	{func(a types.CalendarAnalysis) bool { return a.Density == types.DensityHeavy }, poolMeetings},
	{func(a types.CalendarAnalysis) bool { return a.Density == types.DensityModerate }, poolBalanced},
}

// randIntN is swappable in tests.
var randIntN = rand.Intn

// Compose selects the status for the given analysis. The weather
// snapshot is accepted for forward compatibility and surfaced by
// callers; it does not participate in rule selection. Expiration is
// always left unset here, the sink adapter applies the configured
// status duration.
func Compose(analysis types.CalendarAnalysis, weather *types.WeatherSnapshot) types.Status {
	_ = weather
	return draw(selectPool(analysis))
}

// selectPool walks the cascade and returns the first matching pool,
// falling back to the default working pool.
func selectPool(analysis types.CalendarAnalysis) Pool {
	for _, r := range cascade {
		if r.matches(analysis) {
			return r.pool
		}
	}
	return poolWorking
}

// draw picks one candidate uniformly at random. No repetition
// avoidance across runs: each run is independent.
func draw(pool Pool) types.Status {
	c := pool.Candidates[randIntN(len(pool.Candidates))]
	return types.Status{
		Text:  c.Text,
		Emoji: aliasFor(c.Emoji),
	}
}
