// Package conf contains the constants that are used across packages for configuring
// versions and defaults.
package conf

import (
	"fmt"
	"time"
)

const (
	// ESGLOBVERSION is the version of the esglob application.
	ESGLOBVERSION = "esglob 0.1.0"
	// ESGLOBVERSIONMAJORN is the major version.
	ESGLOBVERSIONMAJORN = 0
	// ESGLOBVERSIONMINORN is the minor version.
	ESGLOBVERSIONMINORN = 1
	// ESGLOBVERSIONPATCHN is the patch version.
	ESGLOBVERSIONPATCHN = 0
	// PROMPT is the default repl prompt, the same one es uses.
	PROMPT = "; "
	// TIMEFORMAT is the default strftime layout for log timestamps.
	TIMEFORMAT = "%Y-%m-%d %H:%M:%S"
	// PROFILEENV names the env var holding the cpu profile output path.
	PROFILEENV = "ESGLOB_PROFILE"
)

// FullVersion returns the version and copyright.
func FullVersion() string {
	return fmt.Sprintf("%v Copyright (C) %v", ESGLOBVERSION, time.Now().Year())
}

// Copyright is the copyright to be written out in the CLI.
func Copyright() string {
	return fmt.Sprintf("Copyright (C) %v", time.Now().Year())
}
