/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

package plan

import (
	"github.com/spf13/cobra"

	"github.com/gaeops/rollrestart/internal/cmd/tool"
	"github.com/gaeops/rollrestart/pkg/rollout"
)

// NewCmd creates the new "plan" command
func NewCmd() *cobra.Command {
	var olderThan string
	var outputFormat string

	planCmd := &cobra.Command{
		Use:   "plan SERVICE VERSION",
		Short: "Compute the rolling restart plan of a deployed version",
		Long: `Lists the running instances of the given service and version and prints
the restart command of every stale one, oldest first, without executing
anything.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cutoff, err := tool.ParseCutoff(olderThan)
			if err != nil {
				return err
			}

			key := rollout.VersionKey{Service: args[0], Version: args[1]}
			return Plan(cmd.Context(), tool.Admin, key, cutoff,
				tool.OutputFormat(outputFormat))
		},
	}

	planCmd.Flags().StringVar(&olderThan, "older-than", "",
		"only plan for instances started strictly before this RFC3339 timestamp (defaults to now)")
	planCmd.Flags().StringVarP(&outputFormat, "output", "o", "text",
		"the output format, one of text, json and yaml")

	return planCmd
}
