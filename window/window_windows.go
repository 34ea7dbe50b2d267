//go:build windows

package window

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procGetWindowTextW     = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengW = user32.NewProc("GetWindowTextLengthW")

	errNoActiveWindow = errors.New("no active window")
)

func activeTitle() (string, error) {
	hwnd := windows.GetForegroundWindow()
	if hwnd == 0 {
		return "", errNoActiveWindow
	}

	n, _, _ := procGetWindowTextLengW.Call(uintptr(hwnd))
	if n == 0 {
		return "", errNoActiveWindow
	}

	buf := make([]uint16, n+1)
	r, _, err := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r == 0 {
		return "", err
	}
	return windows.UTF16ToString(buf[:r]), nil
}
