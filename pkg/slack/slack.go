// Package slack pushes the composed status to the user's Slack
// profile via users.profile.set.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mvdberg/calstatus/pkg/types"
)

const defaultBaseURL = "https://slack.com/api"

type Client struct {
	Token      string
	BaseURL    string
	HTTPClient *http.Client

	// now is swappable in tests for deterministic expirations.
	now func() time.Time
}

func NewClient(token string) *Client {
	return &Client{
		Token:      token,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
}

type profilePayload struct {
	Profile profile `json:"profile"`
}

type profile struct {
	StatusText       string `json:"status_text"`
	StatusEmoji      string `json:"status_emoji"`
	StatusExpiration int64  `json:"status_expiration,omitempty"`
}

type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// SetStatus pushes the status to Slack. durationMinutes > 0 sets a
// status expiration that far in the future; the composed Status itself
// carries no expiration, the duration is a boundary concern configured
// per deployment.
func (c *Client) SetStatus(ctx context.Context, status types.Status, durationMinutes int) error {
	if c.Token == "" {
		return fmt.Errorf("no Slack token configured")
	}

	payload := profilePayload{
		Profile: profile{
			StatusText:  status.Text,
			StatusEmoji: colonize(status.Emoji),
		},
	}
	if durationMinutes > 0 {
		expires := c.nowFunc()().Add(time.Duration(durationMinutes) * time.Minute)
		payload.Profile.StatusExpiration = expires.Unix()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to marshal profile payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/users.profile.set", bytes.NewReader(body))
	if err != nil {
		return pkgerrors.Wrap(err, "failed to build Slack request")
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(err, "Slack request failed")
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.Warnf("failed to close Slack response body: %v", err)
		}
	}()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return pkgerrors.Wrap(err, "failed to decode Slack response")
	}
	if !result.OK {
		if result.Error == "" {
			result.Error = "unknown error"
		}
		return fmt.Errorf("slack rejected status update: %s", result.Error)
	}

	return nil
}

func (c *Client) nowFunc() func() time.Time {
	if c.now != nil {
		return c.now
	}
	return time.Now
}

// colonize wraps an emoji alias in colons exactly once.
func colonize(alias string) string {
	if alias == "" {
		return ""
	}
	return ":" + strings.Trim(alias, ":") + ":"
}
