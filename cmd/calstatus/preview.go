package main

import (
	"github.com/spf13/cobra"
)

func NewPreviewCommand() *cobra.Command {
	icsPath := ""

	cmd := &cobra.Command{
		Use:     "preview",
		Short:   "Show the status that would be pushed, without pushing it",
		GroupID: gBasic,
		Long: `Show the status that would be pushed, without pushing it.

Fetches and analyzes today's calendar, composes a status, and prints
both. Nothing is sent to Slack. Use --ics to preview against a local
calendar file instead of the configured URL.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}

			runner := newRunner(conf, icsPath)
			result, err := runner.Run(cmd.Context(), true)
			if err != nil {
				return err
			}

			a := result.Analysis

			cmd.Println(bold("Calendar analysis:"))
			cmd.Printf("  Events today: %s\n", bold("%d", a.TotalEvents))
			cmd.Printf("  Meeting time: %s\n", bold("%d minutes", a.MeetingMinutes))
			cmd.Printf("  Density: %s\n", bold("%s", a.Density))
			cmd.Printf("  Current activity: %s\n", bold("%s", a.CurrentActivity))
			cmd.Printf("  Out of office: %s\n", bool2Text(a.Flags.OOO))
			cmd.Printf("  Focus time: %s\n", bool2Text(a.Flags.FocusTime))
			cmd.Printf("  Traveling: %s\n", bool2Text(a.Flags.Traveling))
			cmd.Printf("  Private meetings: %s\n", bool2Text(a.Flags.HasPrivateMeetings))

			cmd.Println()
			cmd.Println(bold("Composed status:"))
			cmd.Printf("  Text: %s\n", bold("%s", result.Status.Text))
			cmd.Printf("  Emoji: %s\n", bold(":%s:", result.Status.Emoji))

			if result.Weather != nil {
				cmd.Println()
				cmd.Println(bold("Weather:"))
				cmd.Printf("  %s: %s, %.1f°C\n", result.Weather.City, result.Weather.Description, result.Weather.TempC)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&icsPath, "ics", "", "preview against a local .ics file instead of the configured calendar")

	return cmd
}
