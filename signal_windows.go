//go:build windows

package main

import "os"

// extraSignals is empty on Windows; os.Interrupt covers Ctrl+C.
func extraSignals() []os.Signal {
	return nil
}
