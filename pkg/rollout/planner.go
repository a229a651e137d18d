/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

package rollout

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gaeops/rollrestart/pkg/gcp/appengine"
)

// InstanceLister is the slice of the Admin API needed to plan a rolling
// restart
type InstanceLister interface {
	Project() string
	ListInstances(ctx context.Context, service, version string) ([]appengine.Instance, error)
}

// Plan computes the ordered sequence of restart commands needed to
// replace every instance of the given version started strictly before
// the cutoff. Stale instances are restarted oldest first, so a pass
// started while another one is still running never targets a freshly
// restarted instance.
//
// Planning performs no mutation: the returned commands are executed, or
// just printed, by the caller. An instance listing with no stale
// instances yields an empty plan.
func Plan(
	ctx context.Context,
	lister InstanceLister,
	key VersionKey,
	cutoff time.Time,
) ([]RestartCommand, error) {
	instances, err := lister.ListInstances(ctx, key.Service, key.Version)
	if err != nil {
		return nil, err
	}

	stale := make([]InstanceRecord, 0, len(instances))
	for _, instance := range instances {
		startTime, err := appengine.ParseTimestamp(instance.StartTime)
		if err != nil {
			// An instance whose start time cannot be read cannot be
			// proven fresh, so it must not be silently left out of
			// the restart
			return nil, fmt.Errorf("while reading the start time of instance %v: %w",
				instance.ID, err)
		}

		if startTime.Before(cutoff) {
			stale = append(stale, InstanceRecord{
				ID:        instance.ID,
				StartTime: startTime,
			})
		}
	}

	sort.SliceStable(stale, func(i, j int) bool {
		return stale[i].StartTime.Before(stale[j].StartTime)
	})

	commands := make([]RestartCommand, len(stale))
	for i, record := range stale {
		commands[i] = RestartCommand{
			InstanceName: record.ID,
			Key:          key,
			ProjectID:    lister.Project(),
		}
	}
	return commands, nil
}
