package calendar

import (
	"testing"
	"time"
)

func TestToday(t *testing.T) {
	// 23:30 UTC on March 11 is already March 12 in Amsterdam.
	now := time.Date(2024, 3, 11, 23, 30, 0, 0, time.UTC)

	window, err := Today(now, "Europe/Amsterdam")
	if err != nil {
		t.Fatalf("Today returned error: %v", err)
	}

	loc, _ := time.LoadLocation("Europe/Amsterdam")
	wantStart := time.Date(2024, 3, 12, 0, 0, 0, 0, loc)
	if !window.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", window.Start, wantStart)
	}
	if got := window.End.Sub(window.Start); got != 24*time.Hour {
		t.Errorf("window length = %v, want 24h", got)
	}
}

func TestTodayUnknownZone(t *testing.T) {
	if _, err := Today(time.Now(), "Not/AZone"); err == nil {
		t.Fatal("expected error for unknown time zone")
	}
}
