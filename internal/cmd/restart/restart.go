/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

// Package restart implements the gaeops restart command
package restart

import (
	"context"
	"fmt"
	"time"

	"github.com/gaeops/rollrestart/pkg/gcp/appengine"
	"github.com/gaeops/rollrestart/pkg/rollout"
)

// Restart computes the rolling restart plan of the given version and
// executes it sequentially
func Restart(
	ctx context.Context,
	admin *appengine.Admin,
	key rollout.VersionKey,
	cutoff time.Time,
	dryRun bool,
) error {
	commands, err := rollout.Plan(ctx, admin, key, cutoff)
	if err != nil {
		return err
	}

	if len(commands) == 0 {
		fmt.Printf("No instance of %v started before %v, nothing to restart\n",
			key, cutoff.Format(time.RFC3339))
		return nil
	}

	executor := rollout.Executor{Killer: admin, DryRun: dryRun}
	return executor.Execute(ctx, commands)
}
