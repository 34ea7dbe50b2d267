// Package window reports the title of the focused window.
package window

import (
	"strings"

	"keyhint/log"
)

// Default is returned whenever the focused window cannot be determined.
const Default = "default"

// Probe reports the title of the currently focused window.
type Probe interface {
	ActiveTitle() string
}

type systemProbe struct{}

// New returns a probe backed by the operating system.
func New() Probe {
	return systemProbe{}
}

func (systemProbe) ActiveTitle() string {
	return safeTitle(activeTitle)
}

// safeTitle runs query and folds every failure, blank title or panic into
// Default.
func safeTitle(query func() (string, error)) (title string) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("active window query panicked: %v", r)
			title = Default
		}
	}()

	t, err := query()
	if err != nil || strings.TrimSpace(t) == "" {
		return Default
	}
	return t
}

type staticProbe string

// Static returns a probe that always reports title. A blank title reports
// Default.
func Static(title string) Probe {
	return staticProbe(title)
}

func (s staticProbe) ActiveTitle() string {
	return safeTitle(func() (string, error) { return string(s), nil })
}
