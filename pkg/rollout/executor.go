/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

package rollout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gaeops/rollrestart/pkg/log"
)

// InstanceKiller is the slice of the Admin API needed to execute a
// restart command
type InstanceKiller interface {
	DeleteInstance(ctx context.Context, service, version, id string) error
}

// Executor runs the commands of a plan strictly in order, one at a
// time. Running them concurrently would void the staleness bound the
// planner ordering provides.
type Executor struct {
	Killer InstanceKiller

	// DryRun makes Execute print what would happen without issuing
	// any deletion
	DryRun bool
}

// Execute runs every command of the plan in the given order. The first
// failing command aborts the run, leaving the remaining instances
// untouched.
func (executor *Executor) Execute(ctx context.Context, commands []RestartCommand) error {
	runLogger := log.Log.WithValues(
		"runId", uuid.New().String(),
		"commands", len(commands))
	runLogger.Info("Starting rolling restart")

	for i, command := range commands {
		commandLogger := runLogger.WithValues(
			"instance", command.InstanceName,
			"step", fmt.Sprintf("%d/%d", i+1, len(commands)))

		if executor.DryRun {
			commandLogger.Info("Dry run", "command", command.Description())
			continue
		}

		commandLogger.Info("Restarting instance", "command", command.Description())
		err := executor.Killer.DeleteInstance(ctx,
			command.Key.Service, command.Key.Version, command.InstanceName)
		if err != nil {
			commandLogger.Error(err, "Rolling restart aborted")
			return fmt.Errorf("while restarting instance %v: %w", command.InstanceName, err)
		}
		commandLogger.Info("Instance restarted")
	}

	runLogger.Info("Rolling restart complete")
	return nil
}
