//go:build !linux && !darwin && !windows

package window

import "errors"

func activeTitle() (string, error) {
	return "", errors.New("active window query not supported on this platform")
}
