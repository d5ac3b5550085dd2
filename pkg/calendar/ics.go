package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mvdberg/calstatus/pkg/types"
)

// ICSSource reads events from an iCalendar feed, either an http(s) URL
// or a local file path.
type ICSSource struct {
	Location string
	Client   *http.Client
}

func NewICSSource(location string) *ICSSource {
	return &ICSSource{
		Location: location,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *ICSSource) Events(ctx context.Context, window types.DayWindow) ([]types.CalendarEvent, error) {
	body, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateICal(body); err != nil {
		return nil, err
	}

	return decodeEvents(body, window)
}

func (s *ICSSource) fetch(ctx context.Context) (string, error) {
	if !strings.HasPrefix(s.Location, "http://") && !strings.HasPrefix(s.Location, "https://") {
		b, err := os.ReadFile(s.Location)
		if err != nil {
			return "", pkgerrors.Wrapf(err, "failed to read calendar file %s", s.Location)
		}
		return string(b), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location, nil)
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to build calendar request")
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", pkgerrors.Wrap(err, "calendar fetch failed")
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.Warnf("failed to close calendar response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("calendar fetch returned %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to read calendar response")
	}
	return string(b), nil
}

// validateICal catches the common failure mode of a login page being
// served instead of the feed.
func validateICal(body string) error {
	trimmed := strings.TrimSpace(body)
	upper := strings.ToUpper(trimmed)
	if strings.HasPrefix(upper, "<!DOCTYPE") || strings.HasPrefix(upper, "<HTML") {
		return fmt.Errorf("received HTML instead of iCalendar data, check whether the URL requires authentication")
	}
	if !strings.HasPrefix(trimmed, "BEGIN:VCALENDAR") {
		preview := trimmed
		if len(preview) > 80 {
			preview = preview[:80]
		}
		return fmt.Errorf("invalid iCalendar payload, expected BEGIN:VCALENDAR, got: %s", preview)
	}
	return nil
}

func decodeEvents(body string, window types.DayWindow) ([]types.CalendarEvent, error) {
	decoder := ical.NewDecoder(strings.NewReader(body))

	var events []types.CalendarEvent
	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pkgerrors.Wrap(err, "failed to decode calendar")
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			event := parseEvent(comp)
			if event.Status == "CANCELLED" {
				continue
			}
			if !overlapsWindow(event, window) {
				continue
			}
			events = append(events, event)
		}
	}

	return events, nil
}

func parseEvent(comp *ical.Component) types.CalendarEvent {
	event := types.CalendarEvent{}

	if p := comp.Props.Get(ical.PropSummary); p != nil {
		event.Summary = p.Value
	}
	if p := comp.Props.Get(ical.PropDescription); p != nil {
		event.Description = p.Value
	}
	if p := comp.Props.Get(ical.PropStatus); p != nil {
		event.Status = p.Value
	}
	if p := comp.Props.Get(ical.PropDateTimeStart); p != nil {
		if t, err := parseDateTime(p); err == nil {
			event.Start = t
		}
	}
	if p := comp.Props.Get(ical.PropDateTimeEnd); p != nil {
		if t, err := parseDateTime(p); err == nil {
			event.End = t
		}
	}
	event.AttendeeCount = len(comp.Props.Values(ical.PropAttendee))

	return event
}

// parseDateTime tries the standard property decoding first, then a few
// raw formats that show up in real-world feeds.
func parseDateTime(prop *ical.Prop) (time.Time, error) {
	if t, err := prop.DateTime(time.Local); err == nil {
		return t, nil
	}

	formats := []string{
		"20060102T150405",
		"20060102T150405Z",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, prop.Value, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value %q", prop.Value)
}

// overlapsWindow keeps events intersecting the day window. Events
// without usable times are kept: the feed query is already
// day-bounded upstream and the analyzer charges them a default
// duration instead of dropping them.
func overlapsWindow(event types.CalendarEvent, window types.DayWindow) bool {
	if !event.HasValidTimes() {
		return true
	}
	return event.Start.Before(window.End) && event.End.After(window.Start)
}
