//go:build windows

package shutdown

import (
	"os"
	"os/signal"
)

// Notify delivers Ctrl+C to ch; Windows has no SIGTERM for console apps.
func Notify(ch chan os.Signal) {
	signal.Notify(ch, os.Interrupt)
}
