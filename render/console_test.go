package render

import (
	"bytes"
	"strings"
	"testing"

	"keyhint/shortcuts"
)

func TestConsoleRender(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	s, err := c.Render([]shortcuts.Entry{{Keys: []string{"Ctrl", "+", "S"}, Action: "Save"}}, DefaultOrigin)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Ctrl", "+", "S", "Save"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no escape codes for a non-terminal writer:\n%q", out)
	}
	if i, j := strings.Index(out, "Ctrl"), strings.Index(out, "Save"); i > j {
		t.Errorf("action should follow the keys:\n%s", out)
	}

	s.Close()
	s.Close()
	if n := strings.Count(buf.String(), "(overlay hidden)"); n != 1 {
		t.Errorf("close printed %d times, want 1", n)
	}
}

func TestConsoleRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewConsole(&buf).Render(nil, DefaultOrigin)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if !strings.Contains(buf.String(), "(no shortcuts)") {
		t.Errorf("got %q", buf.String())
	}
}
