package types

import "time"

// Status is the final artifact handed to the presence sink. Emoji is a
// Slack alias name without the surrounding colons ("palm_tree", not
// ":palm_tree:"); the sink adapter adds them.
type Status struct {
	Text       string        `json:"text"`
	Emoji      string        `json:"emoji"`
	Expiration time.Duration `json:"expiration,omitempty"`
}

// WeatherSnapshot is the compact current-conditions result from the
// weather source.
type WeatherSnapshot struct {
	City        string  `json:"city"`
	Conditions  string  `json:"conditions"`
	Description string  `json:"description"`
	TempC       float64 `json:"tempC"`
}
