/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

// The gaeops tool plans and executes zero-downtime rolling restarts of
// App Engine services
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaeops/rollrestart/internal/cmd/plan"
	"github.com/gaeops/rollrestart/internal/cmd/restart"
	"github.com/gaeops/rollrestart/internal/cmd/tool"
	"github.com/gaeops/rollrestart/internal/cmd/versions"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "gaeops",
		Short:        "A tool to safely roll-restart App Engine services",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				// Build information needs no credentials
				return nil
			}
			return tool.Setup(cmd.Context())
		},
	}
	tool.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(plan.NewCmd())
	rootCmd.AddCommand(restart.NewCmd())
	rootCmd.AddCommand(versions.NewCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
