package hotkey

import "testing"

type step struct {
	key  Key
	down bool
	want bool
}

func run(t *testing.T, m *Matcher, steps []step) {
	t.Helper()
	for i, s := range steps {
		var got bool
		if s.down {
			got = m.Press(s.key)
		} else {
			got = m.Release(s.key)
		}
		if got != s.want {
			t.Fatalf("step %d (%v down=%v): got %v, want %v", i, s.key, s.down, got, s.want)
		}
	}
}

func TestStrictFiresOnFullChord(t *testing.T) {
	m := NewMatcher(DefaultChord, false)
	run(t, m, []step{
		{KeyLeftCtrl, true, false},
		{KeyRightShift, true, false},
		{KeyH, true, true},
		{KeyH, true, false}, // auto-repeat
		{KeyH, false, true},
		{KeyH, true, true}, // modifiers still held
		{KeyH, false, true},
		{KeyRightShift, false, false},
		{KeyLeftCtrl, false, false},
	})
}

func TestStrictIgnoresPartialChords(t *testing.T) {
	m := NewMatcher(DefaultChord, false)
	run(t, m, []step{
		{KeyH, true, false},
		{KeyH, false, false},
		{KeyLeftCtrl, true, false},
		{KeyH, true, false},
		{KeyLeftCtrl, false, false},
		{KeyLeftShift, true, false},
		{KeyLeftCtrl, true, false},
		{KeyJ, true, false},
	})
}

func TestStrictModifierReleaseKeepsPressOpen(t *testing.T) {
	m := NewMatcher(DefaultChord, false)
	run(t, m, []step{
		{KeyLeftCtrl, true, false},
		{KeyLeftShift, true, false},
		{KeyH, true, true},
		{KeyLeftCtrl, false, false},
		{KeyH, false, true},
	})
}

func TestLooseFiresOnEveryConstituent(t *testing.T) {
	m := NewMatcher(DefaultChord, true)
	run(t, m, []step{
		{KeyLeftCtrl, true, true},
		{KeyLeftShift, true, true},
		{KeyH, true, true},
		{KeyH, true, false}, // auto-repeat
		{KeyJ, true, false},
		{KeyRightCtrl, true, true},
		{KeyJ, false, false},
		{KeyH, false, true},
	})
}

func TestUnknownKeyIgnored(t *testing.T) {
	for _, loose := range []bool{false, true} {
		m := NewMatcher(DefaultChord, loose)
		if m.Press(KeyUnknown) || m.Release(KeyUnknown) {
			t.Errorf("loose=%v: unknown key fired", loose)
		}
	}
}
