package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "Amsterdam,NL" {
			t.Errorf("q = %q, want Amsterdam,NL", q.Get("q"))
		}
		if q.Get("appid") != "test-key" {
			t.Errorf("appid = %q, want test-key", q.Get("appid"))
		}
		if q.Get("units") != "metric" {
			t.Errorf("units = %q, want metric", q.Get("units"))
		}
		_, _ = w.Write([]byte(`{
			"name": "Amsterdam",
			"weather": [{"main": "Rain", "description": "light rain"}],
			"main": {"temp": 9.5}
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	snapshot, err := c.Current(context.Background(), "Amsterdam,NL")
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if snapshot.City != "Amsterdam" {
		t.Errorf("City = %q, want Amsterdam", snapshot.City)
	}
	if snapshot.Conditions != "Rain" || snapshot.Description != "light rain" {
		t.Errorf("conditions = %q/%q, want Rain/light rain", snapshot.Conditions, snapshot.Description)
	}
	if snapshot.TempC != 9.5 {
		t.Errorf("TempC = %v, want 9.5", snapshot.TempC)
	}
}

func TestCurrentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"cod":401,"message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad-key")
	c.BaseURL = srv.URL

	if _, err := c.Current(context.Background(), "Amsterdam,NL"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestCurrentWithoutKey(t *testing.T) {
	c := NewClient("")
	if _, err := c.Current(context.Background(), "Amsterdam,NL"); err == nil {
		t.Fatal("expected error when no API key is configured")
	}
}
