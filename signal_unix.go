//go:build !windows

package main

import (
	"os"
	"syscall"
)

// extraSignals lists the platform signals that stop a run besides os.Interrupt.
func extraSignals() []os.Signal {
	return []os.Signal{syscall.SIGTERM}
}
