/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

// Package rollout computes and executes zero-downtime rolling restarts
// of the instances running a deployed App Engine version
package rollout

import (
	"time"

	"github.com/kballard/go-shellquote"
)

// VersionKey identifies a deployed version of a service. Two keys are
// equal when both fields are equal.
type VersionKey struct {
	Service string
	Version string
}

func (key VersionKey) String() string {
	return key.Service + "/" + key.Version
}

// InstanceRecord is a running instance with its parsed start time. It
// only exists within a single planning invocation.
type InstanceRecord struct {
	ID        string
	StartTime time.Time
}

// RestartCommand describes the deletion of one stale instance. It is a
// value: constructing one performs no RPC, and executing it is the
// responsibility of an Executor or of whoever reads its Description.
type RestartCommand struct {
	InstanceName string
	Key          VersionKey
	ProjectID    string
}

// Description renders the gcloud invocation equivalent to this command,
// suitable for logs and dry runs
func (command RestartCommand) Description() string {
	return shellquote.Join(
		"gcloud", "app", "instances", "delete", command.InstanceName,
		"--quiet", "--user-output-enabled=false",
		"--service", command.Key.Service,
		"--version", command.Key.Version,
		"--project", command.ProjectID,
	)
}
