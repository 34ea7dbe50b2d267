//go:build darwin || windows

package hotkey

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestUnregisterConcurrentOnce(t *testing.T) {
	var released atomic.Int32
	h := &xHotkey{
		stop:    make(chan struct{}),
		release: func() { released.Add(1) },
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Unregister()
		}()
	}
	wg.Wait()

	if n := released.Load(); n != 1 {
		t.Errorf("released %d times, want 1", n)
	}
	select {
	case <-h.stop:
	default:
		t.Error("stop channel not closed")
	}
}
