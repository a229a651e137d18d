/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

// Package tool contains the common behaviors of the gaeops subcommands
package tool

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/gaeops/rollrestart/pkg/gcp/appengine"
	"github.com/gaeops/rollrestart/pkg/log"
)

// projectEnvVar is the environment variable providing the default
// for the --project flag
const projectEnvVar = "GAE_PROJECT"

var (
	// ProjectID is the GCP project the tool operates on
	ProjectID string

	// Admin is the App Engine Admin API handle used by the subcommands,
	// created by Setup
	Admin *appengine.Admin

	logFlags log.Flags
)

// ErrMissingProject means no GCP project was specified
var ErrMissingProject = errors.New("no GCP project specified, use --project or " + projectEnvVar)

// AddFlags binds the persistent flags shared by every subcommand
func AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&ProjectID, "project", os.Getenv(projectEnvVar),
		"the GCP project whose App Engine application the tool operates on")
	logFlags.AddFlags(flags)
}

// Setup configures the logging subsystem and creates the Admin API
// handle used by the subcommands
func Setup(ctx context.Context) error {
	if err := logFlags.ConfigureLogging(); err != nil {
		return err
	}

	if ProjectID == "" {
		return ErrMissingProject
	}

	var err error
	Admin, err = appengine.NewAdmin(ctx, ProjectID)
	return err
}

// ParseCutoff interprets the value of an --older-than flag. An empty
// value means "everything older than right now".
func ParseCutoff(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}

	cutoff, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --older-than value %q: %w", value, err)
	}
	return cutoff.UTC(), nil
}
