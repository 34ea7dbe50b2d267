//go:build !linux && !darwin && !windows

package hotkey

type unsupportedHotkey struct {
	keydown chan struct{}
	keyup   chan struct{}
}

func New(Options) Hotkey {
	return &unsupportedHotkey{keydown: make(chan struct{}), keyup: make(chan struct{})}
}

func (h *unsupportedHotkey) Register() error          { return ErrUnsupported }
func (h *unsupportedHotkey) Unregister()              {}
func (h *unsupportedHotkey) Keydown() <-chan struct{} { return h.keydown }
func (h *unsupportedHotkey) Keyup() <-chan struct{}   { return h.keyup }

func Diagnose(Options) (string, error) {
	return "", ErrUnsupported
}
