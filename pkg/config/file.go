package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Environment variables that override file values. Credentials usually
// arrive this way so the config file can be committed without secrets.
const (
	EnvEmail         = "USER_EMAIL"
	EnvCalendarURL   = "CALENDAR_URL"
	EnvSlackToken    = "SLACK_TOKEN"
	EnvWeatherAPIKey = "OPENWEATHER_API_KEY"
)

var defaultFileConfig = &RawFileConfig{
	Timezone:              ptrTo("Europe/Amsterdam"),
	StatusDurationMinutes: ptrTo(720),
	Schedule:              ptrTo("@every 30m"),
}

var _ Config = &File{}

// File is a JSON-file-backed Config. Absent fields fall back to
// defaults; env vars override both.
type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

// RawFileConfig is the on-disk shape. Pointer fields distinguish
// "absent" from zero values.
type RawFileConfig struct {
	Email                 *string `json:"email,omitempty"`
	CalendarURL           *string `json:"calendarURL,omitempty"`
	SlackToken            *string `json:"slackToken,omitempty"`
	Timezone              *string `json:"timezone,omitempty"`
	Location              *string `json:"location,omitempty"`
	WeatherAPIKey         *string `json:"weatherAPIKey,omitempty"`
	StatusDurationMinutes *int    `json:"statusDurationMinutes,omitempty"`
	Schedule              *string `json:"schedule,omitempty"`
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	if err := f.Load(); err != nil {
		return nil, err
	}
	return f, nil
}

func NewFileFromConfig(c *RawFileConfig) *File {
	if c == nil {
		c = &RawFileConfig{}
	}
	return &File{c: c, mu: &sync.RWMutex{}}
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing file is fine: env vars and defaults may still
			// form a complete config.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open config file %s", f.filepath)
	}
	defer func(fp *os.File) {
		if err := fp.Close(); err != nil {
			logrus.Warnf("failed to close config file %s", f.filepath)
		}
	}(fp)

	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read config file %s", f.filepath)
	}
	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	if err := json.Unmarshal(b, &conf); err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Validate() error {
	if f.Email() == "" {
		return pkgerrors.Errorf("user email is required: set %s or the email field in the config file", EnvEmail)
	}
	if f.CalendarURL() == "" {
		return pkgerrors.Errorf("calendar URL is required: set %s or the calendarURL field in the config file", EnvCalendarURL)
	}
	return nil
}

func (f *File) Email() string {
	return f.stringValue(EnvEmail, func(c *RawFileConfig) *string { return c.Email })
}

func (f *File) CalendarURL() string {
	return f.stringValue(EnvCalendarURL, func(c *RawFileConfig) *string { return c.CalendarURL })
}

func (f *File) SlackToken() string {
	return f.stringValue(EnvSlackToken, func(c *RawFileConfig) *string { return c.SlackToken })
}

func (f *File) Timezone() string {
	return f.stringValue("", func(c *RawFileConfig) *string { return c.Timezone })
}

func (f *File) Location() string {
	return f.stringValue("", func(c *RawFileConfig) *string { return c.Location })
}

func (f *File) WeatherAPIKey() string {
	return f.stringValue(EnvWeatherAPIKey, func(c *RawFileConfig) *string { return c.WeatherAPIKey })
}

func (f *File) StatusDurationMinutes() int {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.StatusDurationMinutes != nil {
		return *f.c.StatusDurationMinutes
	}
	return *defaultFileConfig.StatusDurationMinutes
}

func (f *File) Schedule() string {
	return f.stringValue("", func(c *RawFileConfig) *string { return c.Schedule })
}

// stringValue resolves env override, then file value, then default.
func (f *File) stringValue(envKey string, field func(*RawFileConfig) *string) string {
	if f.c == nil {
		panic("config is nil")
	}

	if envKey != "" {
		if v := os.Getenv(envKey); v != "" {
			return v
		}
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if v := field(f.c); v != nil {
		return *v
	}
	if v := field(defaultFileConfig); v != nil {
		return *v
	}
	return ""
}

// LogrusFields reports the non-secret parts of the config for startup
// logging.
func (f *File) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"email":                 f.Email(),
		"calendarURL":           f.CalendarURL(),
		"timezone":              f.Timezone(),
		"location":              f.Location(),
		"statusDurationMinutes": f.StatusDurationMinutes(),
		"schedule":              f.Schedule(),
		"slackToken":            redacted(f.SlackToken()),
		"weatherAPIKey":         redacted(f.WeatherAPIKey()),
	}
}

func redacted(secret string) string {
	if secret == "" {
		return "(unset)"
	}
	return "(set)"
}

func ptrTo[T any](v T) *T { return &v }
