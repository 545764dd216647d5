//go:build !windows

package config

import (
	"os"
	"syscall"
)

// processAlive probes the PID with signal 0, which delivers nothing but
// reports whether the process exists.
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		// On Unix, FindProcess always succeeds
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
