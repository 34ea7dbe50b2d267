package shutdown

import (
	"io"
	"strings"
	"testing"
	"time"
)

func TestOnLineFiresOnEnter(t *testing.T) {
	select {
	case <-OnLine(strings.NewReader("\n")):
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for line")
	}
}

func TestOnLineWaitsForNewline(t *testing.T) {
	r, w := io.Pipe()
	done := OnLine(r)

	w.Write([]byte("partial"))
	select {
	case <-done:
		t.Fatal("fired before newline")
	case <-time.After(20 * time.Millisecond):
	}

	w.Write([]byte(" line\n"))
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for line")
	}
}

func TestOnLineIgnoresEOF(t *testing.T) {
	select {
	case <-OnLine(strings.NewReader("no newline")):
		t.Fatal("EOF without a newline must not request shutdown")
	case <-time.After(20 * time.Millisecond):
	}
}
