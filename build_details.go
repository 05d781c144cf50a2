package ccase

import (
	"fmt"
	"runtime"
)

// Build metadata, set via ldflags during release builds:
//
//	-X github.com/erraggy/ccase.version=v1.0.0
//	-X github.com/erraggy/ccase.commit=abc1234
//	-X github.com/erraggy/ccase.buildTime=2026-01-02T15:04:05Z
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version.
func GoVersion() string {
	return runtime.Version()
}

// BuildInfo returns all build metadata as a multi-line string.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
