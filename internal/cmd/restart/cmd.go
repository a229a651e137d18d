/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

package restart

import (
	"github.com/spf13/cobra"

	"github.com/gaeops/rollrestart/internal/cmd/tool"
	"github.com/gaeops/rollrestart/pkg/rollout"
)

// NewCmd creates the new "restart" command
func NewCmd() *cobra.Command {
	var olderThan string
	var dryRun bool

	restartCmd := &cobra.Command{
		Use:   "restart SERVICE VERSION",
		Short: "Roll-restart the stale instances of a deployed version",
		Long: `Computes the rolling restart plan of the given service and version and
executes it, deleting the stale instances one at a time, oldest first.
App Engine replaces each deleted instance with a fresh one, so the
version never loses more than one instance of capacity.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cutoff, err := tool.ParseCutoff(olderThan)
			if err != nil {
				return err
			}

			key := rollout.VersionKey{Service: args[0], Version: args[1]}
			return Restart(cmd.Context(), tool.Admin, key, cutoff, dryRun)
		},
	}

	restartCmd.Flags().StringVar(&olderThan, "older-than", "",
		"only restart instances started strictly before this RFC3339 timestamp (defaults to now)")
	restartCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"print the restart commands without executing them")

	return restartCmd
}
