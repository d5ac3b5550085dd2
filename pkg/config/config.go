package config

// Config is the runtime configuration consumed by the pipeline and
// daemon. Values come from a JSON file with environment overrides for
// identity and credentials.
type Config interface {
	Email() string
	CalendarURL() string
	SlackToken() string
	Timezone() string
	Location() string
	WeatherAPIKey() string
	StatusDurationMinutes() int
	Schedule() string

	// Load reads the configuration from the source.
	Load() error
	// Validate checks that required identity fields are present.
	// Validation failures are fatal before any external call is made.
	Validate() error
}
