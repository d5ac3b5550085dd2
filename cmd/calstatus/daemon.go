package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mvdberg/calstatus/pkg/daemon"
	"github.com/mvdberg/calstatus/pkg/version"
)

// NewDaemonCommand .
func NewDaemonCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "daemon",
		Short:   "Run the calstatus daemon in the foreground",
		GroupID: gAdvanced,
		Long: `Run the calstatus daemon in the foreground.

The daemon re-runs the status pipeline on the configured schedule and
serves an HTTP API over a unix socket for the other commands.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("calstatus daemon starting")

			conf, err := loadConfig()
			if err != nil {
				return err
			}

			return daemon.Run(conf, newRunner(conf, ""), unixSocketPath)
		},
	}
}
