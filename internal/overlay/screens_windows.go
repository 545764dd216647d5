//go:build windows

package overlay

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

// monitorInfoEx mirrors MONITORINFOEXW.
type monitorInfoEx struct {
	Size    uint32
	Monitor winRect
	Work    winRect
	Flags   uint32
	Device  [32]uint16
}

const monitorInfoPrimary = 0x1

// DetectScreens enumerates the attached displays with their work areas, so
// the overlay lands outside the taskbar.
func DetectScreens() []Screen {
	var screens []Screen
	cb := syscall.NewCallback(func(hMonitor, hdc, lprc, lparam uintptr) uintptr {
		var mi monitorInfoEx
		mi.Size = uint32(unsafe.Sizeof(mi))
		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
		if ret != 0 {
			screens = append(screens, Screen{
				ID: windows.UTF16ToString(mi.Device[:]),
				WorkArea: Rect{
					X: int(mi.Work.Left),
					Y: int(mi.Work.Top),
					W: int(mi.Work.Right - mi.Work.Left),
					H: int(mi.Work.Bottom - mi.Work.Top),
				},
				Primary: mi.Flags&monitorInfoPrimary != 0,
			})
		}
		return 1
	})
	procEnumDisplayMonitors.Call(0, 0, cb, 0)
	return screens
}
