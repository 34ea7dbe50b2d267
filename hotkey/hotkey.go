// Package hotkey delivers global chord press/release events.
package hotkey

import "errors"

// ErrUnsupported is returned by Register on platforms without a backend.
var ErrUnsupported = errors.New("global hotkeys not supported on this platform")

// Hotkey provides global shortcut registration with press/release events.
type Hotkey interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
	Keyup() <-chan struct{}
}

// Options configure a system hotkey.
type Options struct {
	Chord Chord
	// Loose fires on any constituent key instead of the full chord. Only the
	// evdev backend honours it.
	Loose bool
}
