// Package weather fetches current conditions from OpenWeather.
// Weather is decorative: failures are logged by the caller and never
// block a status update.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mvdberg/calstatus/pkg/types"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// currentResponse is the subset of the OpenWeather payload we care
// about.
type currentResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// Current returns the current conditions for a location query string
// such as "Amsterdam,NL".
func (c *Client) Current(ctx context.Context, location string) (*types.WeatherSnapshot, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("no weather API key configured")
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to build weather request")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "weather fetch failed")
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.Warnf("failed to close weather response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("weather service returned %d: %s", resp.StatusCode, body)
	}

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to decode weather response")
	}

	snapshot := &types.WeatherSnapshot{
		City:  payload.Name,
		TempC: payload.Main.Temp,
	}
	if len(payload.Weather) > 0 {
		snapshot.Conditions = payload.Weather[0].Main
		snapshot.Description = payload.Weather[0].Description
	}
	return snapshot, nil
}
