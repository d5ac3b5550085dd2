package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mvdberg/calstatus/pkg/types"
)

func sampleFeed(events ...string) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//calstatus//test//EN",
	}
	lines = append(lines, events...)
	lines = append(lines, "END:VCALENDAR", "")
	return strings.Join(lines, "\r\n")
}

func vevent(lines ...string) string {
	all := append([]string{"BEGIN:VEVENT"}, lines...)
	all = append(all, "END:VEVENT")
	return strings.Join(all, "\r\n")
}

func testWindow(t *testing.T) types.DayWindow {
	t.Helper()
	start := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	return types.DayWindow{Start: start, End: start.AddDate(0, 0, 1)}
}

func TestDecodeEvents(t *testing.T) {
	feed := sampleFeed(
		vevent(
			"UID:ev1",
			"SUMMARY:Team Sync",
			"DESCRIPTION:weekly",
			"DTSTART:20240312T090000Z",
			"DTEND:20240312T100000Z",
			"ATTENDEE:mailto:a@example.com",
			"ATTENDEE:mailto:b@example.com",
		),
		vevent(
			"UID:ev2",
			"SUMMARY:Cancelled thing",
			"STATUS:CANCELLED",
			"DTSTART:20240312T110000Z",
			"DTEND:20240312T120000Z",
		),
		vevent(
			"UID:ev3",
			"SUMMARY:Yesterday",
			"DTSTART:20240310T090000Z",
			"DTEND:20240310T100000Z",
		),
	)

	events, err := decodeEvents(feed, testWindow(t))
	if err != nil {
		t.Fatalf("decodeEvents returned error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 (cancelled and out-of-window dropped)", len(events))
	}

	e := events[0]
	if e.Summary != "Team Sync" {
		t.Errorf("Summary = %q, want Team Sync", e.Summary)
	}
	if e.Description != "weekly" {
		t.Errorf("Description = %q, want weekly", e.Description)
	}
	if e.AttendeeCount != 2 {
		t.Errorf("AttendeeCount = %d, want 2", e.AttendeeCount)
	}
	if !e.HasValidTimes() {
		t.Fatal("expected valid times")
	}
	if got := e.Duration(); got != time.Hour {
		t.Errorf("Duration = %v, want 1h", got)
	}
}

func TestDecodeEventsKeepsMissingTimes(t *testing.T) {
	// Events without timestamps stay in: the analyzer charges them a
	// default duration instead of dropping them.
	feed := sampleFeed(vevent("UID:ev1", "SUMMARY:No times"))

	events, err := decodeEvents(feed, testWindow(t))
	if err != nil {
		t.Fatalf("decodeEvents returned error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].HasValidTimes() {
		t.Error("expected missing times to stay zero")
	}
}

func TestValidateICal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", "BEGIN:VCALENDAR\r\nEND:VCALENDAR", false},
		{"leading whitespace", "\n\nBEGIN:VCALENDAR", false},
		{"html login page", "<!DOCTYPE html><html></html>", true},
		{"html lowercase", "<html><body>sign in</body></html>", true},
		{"garbage", "hello world", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateICal(tt.body)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateICal(%q) error = %v, wantErr %v", tt.body, err, tt.wantErr)
			}
		})
	}
}

func TestICSSourceFromHTTP(t *testing.T) {
	feed := sampleFeed(vevent(
		"UID:ev1",
		"SUMMARY:Design Review",
		"DTSTART:20240312T140000Z",
		"DTEND:20240312T153000Z",
	))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	source := NewICSSource(srv.URL)
	events, err := source.Events(context.Background(), testWindow(t))
	if err != nil {
		t.Fatalf("Events returned error: %v", err)
	}
	if len(events) != 1 || events[0].Summary != "Design Review" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestICSSourceFromFile(t *testing.T) {
	feed := sampleFeed(vevent(
		"UID:ev1",
		"SUMMARY:Focus block",
		"DTSTART:20240312T090000Z",
		"DTEND:20240312T110000Z",
	))

	path := filepath.Join(t.TempDir(), "today.ics")
	if err := os.WriteFile(path, []byte(feed), 0o644); err != nil {
		t.Fatal(err)
	}

	source := NewICSSource(path)
	events, err := source.Events(context.Background(), testWindow(t))
	if err != nil {
		t.Fatalf("Events returned error: %v", err)
	}
	if len(events) != 1 || events[0].Summary != "Focus block" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestICSSourceBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	source := NewICSSource(srv.URL)
	if _, err := source.Events(context.Background(), testWindow(t)); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
