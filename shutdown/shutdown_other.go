//go:build !windows

package shutdown

import (
	"os"
	"os/signal"
	"syscall"
)

// Notify delivers interrupt, terminate and hangup to ch. A closed terminal
// stops the listener the same way ENTER does.
func Notify(ch chan os.Signal) {
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
}
