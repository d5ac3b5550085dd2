package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mvdberg/calstatus/pkg/calendar"
	"github.com/mvdberg/calstatus/pkg/config"
	"github.com/mvdberg/calstatus/pkg/pipeline"
	"github.com/mvdberg/calstatus/pkg/slack"
	"github.com/mvdberg/calstatus/pkg/version"
	"github.com/mvdberg/calstatus/pkg/weather"
)

func loadConfig() (*config.File, error) {
	conf, err := config.NewFile(configPath)
	if err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// newRunner assembles the pipeline from config. icsOverride replaces
// the configured calendar source with a local file or URL.
func newRunner(conf *config.File, icsOverride string) *pipeline.Runner {
	location := conf.CalendarURL()
	if icsOverride != "" {
		location = icsOverride
	}

	r := &pipeline.Runner{
		Calendar: calendar.NewICSSource(location),
		Sink:     slack.NewClient(conf.SlackToken()),
		Conf:     conf,
	}
	if conf.WeatherAPIKey() != "" {
		r.Weather = weather.NewClient(conf.WeatherAPIKey())
	}
	return r
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
