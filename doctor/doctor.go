package doctor

import (
	"fmt"
	"os"
	"time"

	"keyhint/hotkey"
	"keyhint/shortcuts"
	"keyhint/shutdown"
	"keyhint/window"
)

type Config struct {
	ShortcutsDir string
	Hotkey       hotkey.Options
}

// Run executes interactive diagnostic checks and returns an exit code (0=all pass, 1=any fail).
func Run(cfg Config) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("keyhint doctor - interactive system diagnostics")
	fmt.Println("===============================================")

	allPass := true

	if !checkHotkey(cfg.Hotkey) {
		allPass = false
	}
	title := checkWindow(window.New())
	if !checkShortcuts(cfg.ShortcutsDir, title) {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func setupInterruptHandler() {
	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted")
		os.Exit(1)
	}()
}

func checkHotkey(opts hotkey.Options) bool {
	fmt.Println()
	fmt.Println("[1/3] Hotkey detection")

	status, err := hotkey.Diagnose(opts)
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}
	fmt.Printf("  %s\n", status)
	fmt.Printf("Press %s...\n", opts.Chord)

	hk := hotkey.New(opts)
	if err := hk.Register(); err != nil {
		fmt.Printf("  FAIL: could not register hotkey: %v\n", err)
		return false
	}
	defer hk.Unregister()

	select {
	case <-hk.Keydown():
		fmt.Println("  PASS: hotkey detected")
		// Wait for keyup to avoid triggering next step
		select {
		case <-hk.Keyup():
		case <-time.After(5 * time.Second):
		}
		// Reset terminal after hotkey - it may leave terminal in raw mode
		resetTerminal()
		return true
	case <-time.After(10 * time.Second):
		fmt.Println("  FAIL: timeout waiting for hotkey")
		return false
	}
}

// checkWindow never fails: an unknown window is reported and the default
// hints are used.
func checkWindow(probe window.Probe) string {
	fmt.Println()
	fmt.Println("[2/3] Active window")
	fmt.Println("Focus the window you want hints for...")
	for i := 3; i > 0; i-- {
		fmt.Printf("  %d\n", i)
		time.Sleep(time.Second)
	}

	title := probe.ActiveTitle()
	if title == window.Default {
		fmt.Println("  WARN: could not read the active window title; default hints will be used")
		return title
	}
	fmt.Printf("  PASS: active window %q\n", title)
	return title
}

func checkShortcuts(dir, title string) bool {
	fmt.Println()
	fmt.Println("[3/3] Shortcut files")

	set := shortcuts.Load(dir)
	apps := set.Apps()
	if len(apps) == 1 && len(set[shortcuts.DefaultApp]) == 0 {
		fmt.Printf("  FAIL: no shortcuts loaded from %s\n", dir)
		return false
	}
	fmt.Printf("  PASS: %d application(s) loaded from %s\n", len(apps), dir)

	if _, ok := set[title]; ok {
		fmt.Printf("  %q has %d hint(s)\n", title, len(set[title]))
	} else {
		fmt.Printf("  %q has no entry; %d default hint(s) would be shown\n", title, len(set.Lookup(title)))
	}
	return true
}
