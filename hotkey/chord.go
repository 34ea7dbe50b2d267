package hotkey

import (
	"fmt"
	"strings"
)

// Key identifies a physical key independent of platform scan codes.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftShift
	KeyRightShift
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeySpace
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

type Modifier int

const (
	ModCtrl Modifier = iota + 1
	ModShift
	ModAlt
	ModSuper
)

var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"option":  ModAlt,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"win":     ModSuper,
}

func (m Modifier) String() string {
	switch m {
	case ModCtrl:
		return "ctrl"
	case ModShift:
		return "shift"
	case ModAlt:
		return "alt"
	case ModSuper:
		return "super"
	}
	return "?"
}

// keys returns the left and right physical keys for m.
func (m Modifier) keys() (Key, Key) {
	switch m {
	case ModCtrl:
		return KeyLeftCtrl, KeyRightCtrl
	case ModShift:
		return KeyLeftShift, KeyRightShift
	case ModAlt:
		return KeyLeftAlt, KeyRightAlt
	case ModSuper:
		return KeyLeftSuper, KeyRightSuper
	}
	return KeyUnknown, KeyUnknown
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k == KeySpace:
		return "space"
	}
	return "?"
}

// Chord is a set of modifiers plus one trigger key.
type Chord struct {
	Mods []Modifier
	Key  Key
}

// DefaultChord is Ctrl+Shift+H.
var DefaultChord = Chord{Mods: []Modifier{ModCtrl, ModShift}, Key: KeyH}

// ParseChord parses strings such as "ctrl+shift+h". Exactly one non-modifier
// key is required and must be a letter, digit or space.
func ParseChord(s string) (Chord, error) {
	var c Chord
	seen := map[Modifier]bool{}
	for _, part := range strings.Split(strings.ToLower(strings.TrimSpace(s)), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Chord{}, fmt.Errorf("invalid chord %q: empty key", s)
		}
		if m, ok := modifierNames[part]; ok {
			if !seen[m] {
				seen[m] = true
				c.Mods = append(c.Mods, m)
			}
			continue
		}
		k := parseKey(part)
		if k == KeyUnknown {
			return Chord{}, fmt.Errorf("invalid chord %q: unknown key %q", s, part)
		}
		if c.Key != KeyUnknown {
			return Chord{}, fmt.Errorf("invalid chord %q: more than one non-modifier key", s)
		}
		c.Key = k
	}
	if c.Key == KeyUnknown {
		return Chord{}, fmt.Errorf("invalid chord %q: missing trigger key", s)
	}
	return c, nil
}

func parseKey(s string) Key {
	if s == "space" {
		return KeySpace
	}
	if len(s) != 1 {
		return KeyUnknown
	}
	switch ch := s[0]; {
	case ch >= 'a' && ch <= 'z':
		return KeyA + Key(ch-'a')
	case ch >= '0' && ch <= '9':
		return Key0 + Key(ch-'0')
	}
	return KeyUnknown
}

func (c Chord) String() string {
	parts := make([]string, 0, len(c.Mods)+1)
	for _, m := range c.Mods {
		parts = append(parts, m.String())
	}
	parts = append(parts, c.Key.String())
	return strings.Join(parts, "+")
}

// member reports whether k is one of the chord's keys, counting either side
// of a modifier pair.
func (c Chord) member(k Key) bool {
	if k == c.Key {
		return true
	}
	for _, m := range c.Mods {
		l, r := m.keys()
		if k == l || k == r {
			return true
		}
	}
	return false
}
