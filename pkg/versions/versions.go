/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

// Package versions contains the version of the rollrestart tooling and
// the build metadata injected at link time
package versions

var (
	// buildVersion is the tooling version, overridden during the
	// release process
	buildVersion = "1.2.0"

	// buildCommit is the git commit of the build
	buildCommit = "none"

	// buildDate is the date of the build
	buildDate = "unknown"
)

// BuildInfo is a struct containing all the info about the build
type BuildInfo struct {
	Version, Commit, Date string
}

// Info contains the build info of the running binary
var Info = BuildInfo{
	Version: buildVersion,
	Commit:  buildCommit,
	Date:    buildDate,
}
