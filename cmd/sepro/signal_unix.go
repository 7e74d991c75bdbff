//go:build !windows
// +build !windows

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// haltSignals names the signals that should trigger a graceful halt,
// matching the split the teacher uses for its platform-specific system
// files (system_windows.go vs. the portable system.go).
func haltSignals() []os.Signal {
	return []os.Signal{unix.SIGINT, unix.SIGTERM}
}
