package client

import (
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/mvdberg/calstatus/pkg/pipeline"
	"github.com/mvdberg/calstatus/pkg/types"
)

func (c *Client) GetAnalysis() (*types.CalendarAnalysis, error) {
	ret, err := c.Get("/analysis")
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get calendar analysis")
	}

	var analysis types.CalendarAnalysis
	if err := json.Unmarshal([]byte(ret), &analysis); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to unmarshal calendar analysis")
	}
	return &analysis, nil
}

// GetStatusPreview composes a status on the daemon without pushing it.
func (c *Client) GetStatusPreview() (*pipeline.Result, error) {
	ret, err := c.Get("/status")
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get status preview")
	}
	return unmarshalResult(ret)
}

// GetLast returns the most recent completed update, or ErrNotFound if
// the daemon has not pushed yet.
func (c *Client) GetLast() (*pipeline.Result, error) {
	ret, err := c.Get("/last")
	if err != nil {
		return nil, err
	}
	return unmarshalResult(ret)
}

// Update triggers an immediate pipeline run with pushing enabled.
func (c *Client) Update() (*pipeline.Result, error) {
	ret, err := c.Post("/update", "")
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to trigger update")
	}
	return unmarshalResult(ret)
}

type ScheduleInfo struct {
	Schedule string `json:"schedule"`
	NextRun  string `json:"nextRun,omitempty"`
	Running  bool   `json:"running"`
}

func (c *Client) GetSchedule() (*ScheduleInfo, error) {
	ret, err := c.Get("/schedule")
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get schedule")
	}

	var info ScheduleInfo
	if err := json.Unmarshal([]byte(ret), &info); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to unmarshal schedule")
	}
	return &info, nil
}

// GetConfig returns the daemon's sanitized config: secrets appear only
// as set/unset markers.
func (c *Client) GetConfig() (map[string]any, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get config")
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(ret), &fields); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to unmarshal config")
	}
	return fields, nil
}

func (c *Client) SkipNext() (string, error) {
	return c.Post("/schedule/skip", "")
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", err
	}

	var payload struct {
		Version   string `json:"version"`
		GitCommit string `json:"gitCommit"`
	}
	if err := json.Unmarshal([]byte(ret), &payload); err != nil {
		return "", pkgerrors.Wrap(err, "failed to unmarshal version")
	}
	return payload.Version + " " + payload.GitCommit, nil
}

func unmarshalResult(ret string) (*pipeline.Result, error) {
	var result pipeline.Result
	if err := json.Unmarshal([]byte(ret), &result); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to unmarshal pipeline result")
	}
	return &result, nil
}
