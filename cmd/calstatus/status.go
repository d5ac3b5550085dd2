package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvdberg/calstatus/pkg/client"
)

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Show the last status pushed by the daemon",
		GroupID: gBasic,
		Long:    `Show the last status the daemon pushed, its calendar analysis, and the next scheduled run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			apiClient := client.NewClient(unixSocketPath)

			last, err := apiClient.GetLast()
			if err != nil {
				if errors.Is(err, client.ErrNotFound) {
					cmd.Println("The daemon has not pushed a status yet.")
					return nil
				}
				return fmt.Errorf("failed to get last status: %w", err)
			}

			a := last.Analysis

			cmd.Println(bold("Last status:"))
			cmd.Printf("  Text: %s\n", bold("%s", last.Status.Text))
			cmd.Printf("  Emoji: %s\n", bold(":%s:", last.Status.Emoji))
			cmd.Printf("  Pushed to Slack: %s\n", bool2Text(last.Pushed))
			cmd.Printf("  Ran at: %s\n", bold("%s", last.RanAt.Format("15:04 MST")))

			cmd.Println()
			cmd.Println(bold("Calendar analysis:"))
			cmd.Printf("  Events today: %s\n", bold("%d", a.TotalEvents))
			cmd.Printf("  Meeting time: %s\n", bold("%d minutes", a.MeetingMinutes))
			cmd.Printf("  Density: %s\n", bold("%s", a.Density))
			cmd.Printf("  Current activity: %s\n", bold("%s", a.CurrentActivity))

			schedule, err := apiClient.GetSchedule()
			if err != nil {
				return fmt.Errorf("failed to get schedule: %w", err)
			}
			cmd.Println()
			cmd.Println(bold("Schedule:"))
			cmd.Printf("  Expression: %s\n", bold("%s", schedule.Schedule))
			if schedule.NextRun != "" {
				cmd.Printf("  Next run: %s\n", bold("%s", schedule.NextRun))
			}
			cmd.Printf("  Running: %s\n", bool2Text(schedule.Running))

			return nil
		},
	}
}
