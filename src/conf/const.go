// Package conf contains the constants that are used across packages for configuring
// versions and limits, and the environment settings the command line reads.
package conf

import (
	"fmt"
	"time"
)

const (
	// VERSION is the version of the jstype application.
	VERSION = "jstype 0.1.0"
	// VERSIONMAJORN is the major version.
	VERSIONMAJORN = 0
	// VERSIONMINORN is the minor version.
	VERSIONMINORN = 1
	// VERSIONPATCHN is the patch version.
	VERSIONPATCHN = 0
	// MAXDEPTH is the default max nesting depth the walker will descend into.
	MAXDEPTH = 512
	// DEFAULTSTAMP is the banner format used when a stamp is requested without one.
	DEFAULTSTAMP = "Generated by " + VERSION + " on %Y-%m-%d %H:%M:%S"
)

// FullVersion returns the version and copyright.
func FullVersion() string {
	return fmt.Sprintf("%v Copyright (C) %v", VERSION, time.Now().Year())
}

// Copyright is the copyright to be written out in the CLI.
func Copyright() string {
	return fmt.Sprintf("Copyright (C) %v", time.Now().Year())
}
