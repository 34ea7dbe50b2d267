package shutdown

import (
	"bufio"
	"io"
)

// OnLine returns a channel closed once a full line is read from r. If r hits
// EOF or fails first the channel is never closed, so a detached process with
// no stdin keeps running until signalled.
func OnLine(r io.Reader) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		if _, err := bufio.NewReader(r).ReadString('\n'); err == nil {
			close(done)
		}
	}()
	return done
}
