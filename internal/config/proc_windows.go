//go:build windows

package config

import "golang.org/x/sys/windows"

// processAlive checks the PID via OpenProcess. Signal probing is not
// supported on Windows, so a handle query stands in for signal 0.
func processAlive(pid int) bool {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		// Access denied still proves the process exists.
		return err == windows.ERROR_ACCESS_DENIED
	}
	defer windows.CloseHandle(h)

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err == nil && code != uint32(windows.STILL_ACTIVE) {
		return false
	}
	return true
}
