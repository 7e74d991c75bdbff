//go:build windows
// +build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// haltSignals mirrors haltSignals in signal_unix.go for Windows, using
// golang.org/x/sys/windows the way the teacher's system_windows.go reaches
// for the platform package instead of inventing its own syscall numbers.
func haltSignals() []os.Signal {
	return []os.Signal{windows.SIGINT, windows.SIGTERM}
}
