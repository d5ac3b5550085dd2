package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewUpdateCommand() *cobra.Command {
	dryRun := false

	cmd := &cobra.Command{
		Use:     "update",
		Short:   "Analyze today's calendar and push a Slack status",
		GroupID: gBasic,
		Long: `Analyze today's calendar and push a Slack status.

Runs the full pipeline once: fetch calendar, classify the day, compose a
status, and set it on Slack. A calendar or weather failure degrades to a
default status; only a failed push makes the command fail.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}

			runner := newRunner(conf, "")
			result, err := runner.Run(cmd.Context(), dryRun)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"text":   result.Status.Text,
				"emoji":  result.Status.Emoji,
				"pushed": result.Pushed,
			}).Info("update finished")

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compose the status but do not push it to Slack")

	return cmd
}
