//go:build linux

package hotkey

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	evKey      = 1
	keyPress   = 1
	keyRelease = 0
)

// input_event is 24 bytes on 64-bit Linux:
// timeval (16 bytes) + type (2) + code (2) + value (4)
const inputEventSize = 24

// evdev key codes from linux/input-event-codes.h
var evdevKeys = map[uint16]Key{
	29: KeyLeftCtrl, 97: KeyRightCtrl,
	42: KeyLeftShift, 54: KeyRightShift,
	56: KeyLeftAlt, 100: KeyRightAlt,
	125: KeyLeftSuper, 126: KeyRightSuper,
	57: KeySpace,

	2: Key1, 3: Key2, 4: Key3, 5: Key4, 6: Key5,
	7: Key6, 8: Key7, 9: Key8, 10: Key9, 11: Key0,

	16: KeyQ, 17: KeyW, 18: KeyE, 19: KeyR, 20: KeyT,
	21: KeyY, 22: KeyU, 23: KeyI, 24: KeyO, 25: KeyP,
	30: KeyA, 31: KeyS, 32: KeyD, 33: KeyF, 34: KeyG,
	35: KeyH, 36: KeyJ, 37: KeyK, 38: KeyL,
	44: KeyZ, 45: KeyX, 46: KeyC, 47: KeyV, 48: KeyB,
	49: KeyN, 50: KeyM,
}

type evdevHotkey struct {
	opts    Options
	keydown chan struct{}
	keyup   chan struct{}
	files   []*os.File
	stop    chan struct{}
	once    sync.Once

	// One matcher shared by every keyboard so a chord split across two
	// devices still matches.
	mu      sync.Mutex
	matcher *Matcher
}

// New creates a hotkey using evdev (reads /dev/input directly).
// Requires user to be in the 'input' group.
func New(opts Options) Hotkey {
	return &evdevHotkey{
		opts:    opts,
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
		matcher: NewMatcher(opts.Chord, opts.Loose),
	}
}

func (h *evdevHotkey) Register() error {
	keyboards, err := findKeyboards()
	if err != nil {
		return fmt.Errorf("finding keyboards: %w", err)
	}
	if len(keyboards) == 0 {
		return fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	h.stop = make(chan struct{})

	for _, path := range keyboards {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		h.files = append(h.files, f)
		go h.readEvents(f)
	}

	if len(h.files) == 0 {
		return fmt.Errorf("could not open any keyboard device (run: sudo usermod -aG input $USER, then re-login)")
	}

	return nil
}

func (h *evdevHotkey) readEvents(f *os.File) {
	buf := make([]byte, inputEventSize*16)

	for {
		select {
		case <-h.stop:
			return
		default:
		}

		n, err := f.Read(buf)
		if err != nil {
			return
		}

		for i := 0; i+inputEventSize <= n; i += inputEventSize {
			evType := binary.LittleEndian.Uint16(buf[i+16:])
			evCode := binary.LittleEndian.Uint16(buf[i+18:])
			evValue := int32(binary.LittleEndian.Uint32(buf[i+20:]))

			if evType != evKey {
				continue
			}
			// Keys outside the table are noise for chord matching.
			key, ok := evdevKeys[evCode]
			if !ok {
				continue
			}
			h.dispatch(key, evValue)
		}
	}
}

func (h *evdevHotkey) dispatch(key Key, value int32) {
	h.mu.Lock()
	var down, up bool
	switch value {
	case keyPress:
		down = h.matcher.Press(key)
	case keyRelease:
		up = h.matcher.Release(key)
	}
	h.mu.Unlock()

	if down {
		select {
		case h.keydown <- struct{}{}:
		default:
		}
	}
	if up {
		select {
		case h.keyup <- struct{}{}:
		default:
		}
	}
}

func (h *evdevHotkey) Unregister() {
	h.once.Do(func() {
		if h.stop != nil {
			close(h.stop)
		}
		for _, f := range h.files {
			f.Close()
		}
	})
}

func (h *evdevHotkey) Keydown() <-chan struct{} {
	return h.keydown
}

func (h *evdevHotkey) Keyup() <-chan struct{} {
	return h.keyup
}

func findKeyboards() ([]string, error) {
	entries, err := os.ReadDir("/dev/input")
	if err != nil {
		return nil, err
	}

	var keyboards []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		path := filepath.Join("/dev/input", e.Name())
		if isKeyboard(e.Name()) {
			keyboards = append(keyboards, path)
		}
	}
	return keyboards, nil
}

func isKeyboard(eventName string) bool {
	capsPath := filepath.Join("/sys/class/input", eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	// Real keyboards have long key capability bitmaps
	caps := strings.TrimSpace(string(data))
	return len(caps) > 10
}

// Diagnose checks hotkey/evdev access and returns a status message.
func Diagnose(opts Options) (string, error) {
	keyboards, err := findKeyboards()
	if err != nil {
		return "", fmt.Errorf("cannot scan input devices: %w", err)
	}
	if len(keyboards) == 0 {
		return "", fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	var opened string
	for _, path := range keyboards {
		f, err := os.Open(path)
		if err == nil {
			f.Close()
			opened = path
			break
		}
	}
	if opened == "" {
		return "", fmt.Errorf("found %d keyboard(s) but cannot open any (run: sudo usermod -aG input $USER)", len(keyboards))
	}

	mode := "strict"
	if opts.Loose {
		mode = "loose"
	}
	return fmt.Sprintf("%d keyboard(s) found, opened %s, chord %s (%s)", len(keyboards), opened, opts.Chord, mode), nil
}
