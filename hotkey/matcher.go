package hotkey

// Matcher turns a stream of key presses and releases into chord press and
// release edges. It is not safe for concurrent use.
//
// In strict mode the chord fires when its key goes down while every chord
// modifier is held, on either side. In loose mode every fresh press of any
// chord key fires, so pressing Ctrl, Shift and H in turn fires three times.
type Matcher struct {
	chord Chord
	loose bool
	held  map[Key]bool
	// firedBy is the key whose press produced the outstanding strict press,
	// or KeyUnknown.
	firedBy Key
}

func NewMatcher(c Chord, loose bool) *Matcher {
	return &Matcher{chord: c, loose: loose, held: map[Key]bool{}}
}

// Press records k going down and reports whether the chord fired.
// Auto-repeat of a held key never fires.
func (m *Matcher) Press(k Key) bool {
	if k == KeyUnknown || m.held[k] {
		return false
	}
	m.held[k] = true

	if m.loose {
		return m.chord.member(k)
	}
	if m.firedBy != KeyUnknown || k != m.chord.Key || !m.modsHeld() {
		return false
	}
	m.firedBy = k
	return true
}

// Release records k going up and reports whether it ends a chord press.
func (m *Matcher) Release(k Key) bool {
	if k == KeyUnknown {
		return false
	}
	wasHeld := m.held[k]
	delete(m.held, k)

	if m.loose {
		return wasHeld && m.chord.member(k)
	}
	if k == m.firedBy {
		m.firedBy = KeyUnknown
		return true
	}
	return false
}

func (m *Matcher) modsHeld() bool {
	for _, mod := range m.chord.Mods {
		l, r := mod.keys()
		if !m.held[l] && !m.held[r] {
			return false
		}
	}
	return true
}
