/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

// Package plan implements the gaeops plan command
package plan

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cheynewallace/tabby"
	"github.com/logrusorgru/aurora/v3"
	"github.com/thoas/go-funk"

	"github.com/gaeops/rollrestart/internal/cmd/tool"
	"github.com/gaeops/rollrestart/pkg/rollout"
)

// Summary is the machine-readable rendering of a rolling restart plan
type Summary struct {
	Project  string           `json:"project" yaml:"project"`
	Service  string           `json:"service" yaml:"service"`
	Version  string           `json:"version" yaml:"version"`
	Cutoff   string           `json:"cutoff" yaml:"cutoff"`
	Commands []CommandSummary `json:"commands" yaml:"commands"`
}

// CommandSummary is the machine-readable rendering of one restart command
type CommandSummary struct {
	Instance string `json:"instance" yaml:"instance"`
	Command  string `json:"command" yaml:"command"`
}

// Plan implements the "plan" subcommand
func Plan(
	ctx context.Context,
	lister rollout.InstanceLister,
	key rollout.VersionKey,
	cutoff time.Time,
	format tool.OutputFormat,
) error {
	commands, err := rollout.Plan(ctx, lister, key, cutoff)
	if err != nil {
		return err
	}

	return printPlan(os.Stdout, lister.Project(), key, cutoff, commands, format)
}

func printPlan(
	writer io.Writer,
	project string,
	key rollout.VersionKey,
	cutoff time.Time,
	commands []rollout.RestartCommand,
	format tool.OutputFormat,
) error {
	if format != tool.OutputFormatText {
		return tool.Print(summarize(project, key, cutoff, commands), format, writer)
	}

	if len(commands) == 0 {
		fmt.Fprintln(writer, aurora.Green("Nothing to restart"),
			fmt.Sprintf(" no instance of %v started before %v",
				key, cutoff.Format(time.RFC3339)))
		return nil
	}

	fmt.Fprintln(writer,
		aurora.Yellow(fmt.Sprintf("%d stale instances", len(commands))),
		fmt.Sprintf(" %v, started before %v", key, cutoff.Format(time.RFC3339)))

	table := tabby.NewCustom(tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0))
	table.AddHeader("ORDER", "INSTANCE", "COMMAND")
	for i, command := range commands {
		table.AddLine(i+1, command.InstanceName, command.Description())
	}
	table.Print()

	return nil
}

func summarize(
	project string,
	key rollout.VersionKey,
	cutoff time.Time,
	commands []rollout.RestartCommand,
) Summary {
	return Summary{
		Project: project,
		Service: key.Service,
		Version: key.Version,
		Cutoff:  cutoff.Format(time.RFC3339),
		Commands: funk.Map(commands, func(command rollout.RestartCommand) CommandSummary {
			return CommandSummary{
				Instance: command.InstanceName,
				Command:  command.Description(),
			}
		}).([]CommandSummary),
	}
}
