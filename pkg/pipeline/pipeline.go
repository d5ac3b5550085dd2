// Package pipeline wires the calendar source, analyzer, composer, and
// presence sink into a single run. Collaborator failures degrade to
// safe defaults so a status is still produced; only a failed final
// push is surfaced to the caller.
package pipeline

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mvdberg/calstatus/pkg/analyzer"
	"github.com/mvdberg/calstatus/pkg/calendar"
	"github.com/mvdberg/calstatus/pkg/composer"
	"github.com/mvdberg/calstatus/pkg/config"
	"github.com/mvdberg/calstatus/pkg/types"
)

// WeatherSource fetches current conditions for a location.
type WeatherSource interface {
	Current(ctx context.Context, location string) (*types.WeatherSnapshot, error)
}

// PresenceSink accepts the composed status.
type PresenceSink interface {
	SetStatus(ctx context.Context, status types.Status, durationMinutes int) error
}

// Runner is a single-user, run-to-completion status updater.
type Runner struct {
	Calendar calendar.Source
	Weather  WeatherSource // nil disables the weather fetch
	Sink     PresenceSink
	Conf     config.Config
	Log      logrus.FieldLogger

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

// Result is everything a single run produced.
type Result struct {
	Analysis types.CalendarAnalysis `json:"analysis"`
	Status   types.Status           `json:"status"`
	Weather  *types.WeatherSnapshot `json:"weather,omitempty"`
	Events   int                    `json:"events"`
	Pushed   bool                   `json:"pushed"`
	RanAt    time.Time              `json:"ranAt"`
}

// Run executes the pipeline once. dryRun composes without pushing.
func (r *Runner) Run(ctx context.Context, dryRun bool) (*Result, error) {
	log := r.logger()
	now := r.nowFunc()()

	window, err := calendar.Today(now, r.Conf.Timezone())
	if err != nil {
		// A bad time zone is a config problem, not a degradable one.
		return nil, err
	}

	// The calendar and weather fetches are independent; issue them in
	// parallel. Both degrade on failure.
	type calendarResult struct {
		events []types.CalendarEvent
		err    error
	}
	calCh := make(chan calendarResult, 1)
	go func() {
		events, err := r.Calendar.Events(ctx, window)
		calCh <- calendarResult{events, err}
	}()

	var weather *types.WeatherSnapshot
	if r.Weather != nil && r.Conf.Location() != "" {
		w, err := r.Weather.Current(ctx, r.Conf.Location())
		if err != nil {
			log.WithError(err).Warn("weather fetch failed, continuing without weather")
		} else {
			weather = w
		}
	}

	cal := <-calCh
	if cal.err != nil {
		log.WithError(cal.err).Warn("calendar fetch failed, continuing with an empty day")
		cal.events = nil
	}
	log.WithField("events", len(cal.events)).Info("calendar fetched")

	analysis := analyzer.Analyze(cal.events, now)
	log.WithFields(logrus.Fields{
		"totalEvents":     analysis.TotalEvents,
		"meetingMinutes":  analysis.MeetingMinutes,
		"density":         analysis.Density,
		"currentActivity": analysis.CurrentActivity,
		"ooo":             analysis.Flags.OOO,
		"focusTime":       analysis.Flags.FocusTime,
		"traveling":       analysis.Flags.Traveling,
		"private":         analysis.Flags.HasPrivateMeetings,
	}).Info("calendar analyzed")

	status := composer.Compose(analysis, weather)
	log.WithFields(logrus.Fields{
		"text":  status.Text,
		"emoji": status.Emoji,
	}).Info("status composed")

	result := &Result{
		Analysis: analysis,
		Status:   status,
		Weather:  weather,
		Events:   len(cal.events),
		RanAt:    now,
	}

	if dryRun {
		log.Info("dry run, skipping presence update")
		return result, nil
	}

	if err := r.Sink.SetStatus(ctx, status, r.Conf.StatusDurationMinutes()); err != nil {
		return result, err
	}
	result.Pushed = true
	log.Info("presence status updated")

	return result, nil
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	return logrus.StandardLogger()
}

func (r *Runner) nowFunc() func() time.Time {
	if r.Now != nil {
		return r.Now
	}
	return time.Now
}
