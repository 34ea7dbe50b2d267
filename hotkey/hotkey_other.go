//go:build darwin || windows

package hotkey

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"keyhint/log"
)

type xHotkey struct {
	hk      *hotkey.Hotkey
	keydown chan struct{}
	keyup   chan struct{}
	stop    chan struct{}
	once    sync.Once
	// release undoes the OS registration.
	release func()
}

// New creates a hotkey using golang.design/x/hotkey (Cocoa/Win32). The OS
// matches the full chord, so Options.Loose is not available here.
func New(opts Options) Hotkey {
	if opts.Loose {
		log.Warn("loose chord matching needs the evdev backend; using strict matching")
	}
	mods := make([]hotkey.Modifier, 0, len(opts.Chord.Mods))
	for _, m := range opts.Chord.Mods {
		mods = append(mods, platformModifier(m))
	}
	h := &xHotkey{
		hk:      hotkey.New(mods, platformKey(opts.Chord.Key)),
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
	h.release = func() { h.hk.Unregister() }
	return h
}

func (h *xHotkey) Register() error {
	if err := h.hk.Register(); err != nil {
		return err
	}
	go forward(h.hk.Keydown(), h.keydown, h.stop)
	go forward(h.hk.Keyup(), h.keyup, h.stop)
	return nil
}

func forward(in <-chan hotkey.Event, out chan struct{}, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-in:
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}
}

func (h *xHotkey) Unregister() {
	h.once.Do(func() {
		close(h.stop)
		h.release()
	})
}

func (h *xHotkey) Keydown() <-chan struct{} {
	return h.keydown
}

func (h *xHotkey) Keyup() <-chan struct{} {
	return h.keyup
}

func platformKey(k Key) hotkey.Key {
	switch {
	case k >= KeyA && k <= KeyZ:
		return letterKeys[k-KeyA]
	case k >= Key0 && k <= Key9:
		return digitKeys[k-Key0]
	}
	return hotkey.KeySpace
}

var letterKeys = [...]hotkey.Key{
	hotkey.KeyA, hotkey.KeyB, hotkey.KeyC, hotkey.KeyD, hotkey.KeyE, hotkey.KeyF,
	hotkey.KeyG, hotkey.KeyH, hotkey.KeyI, hotkey.KeyJ, hotkey.KeyK, hotkey.KeyL,
	hotkey.KeyM, hotkey.KeyN, hotkey.KeyO, hotkey.KeyP, hotkey.KeyQ, hotkey.KeyR,
	hotkey.KeyS, hotkey.KeyT, hotkey.KeyU, hotkey.KeyV, hotkey.KeyW, hotkey.KeyX,
	hotkey.KeyY, hotkey.KeyZ,
}

var digitKeys = [...]hotkey.Key{
	hotkey.Key0, hotkey.Key1, hotkey.Key2, hotkey.Key3, hotkey.Key4,
	hotkey.Key5, hotkey.Key6, hotkey.Key7, hotkey.Key8, hotkey.Key9,
}

// Diagnose checks hotkey availability and returns a status message.
func Diagnose(opts Options) (string, error) {
	return fmt.Sprintf("hotkey support available (%s)", opts.Chord), nil
}
