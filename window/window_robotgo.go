//go:build linux || darwin

package window

import "github.com/go-vgo/robotgo"

// activeTitle reads the focused window's title through X11 or Cocoa.
func activeTitle() (string, error) {
	return robotgo.GetTitle(), nil
}
