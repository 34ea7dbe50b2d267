package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"keyhint/doctor"
	"keyhint/hotkey"
	"keyhint/log"
	"keyhint/overlay"
	"keyhint/render"
	"keyhint/shortcuts"
	"keyhint/shutdown"
	"keyhint/window"
)

var version = "dev"

// Set by initGUI in gui builds; nil means hints are printed to the console.
var (
	guiRenderer render.Renderer
	quitGUI     func()
)

func resolveShortcutsDir(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv("KEYHINT_SHORTCUTS"); env != "" {
		return env
	}
	return "Shortcuts"
}

func modeName(loose bool) string {
	if loose {
		return "loose"
	}
	return "strict"
}

func run() {
	shortcutsFlag := flag.String("shortcuts", "", "Folder of shortcut files (default: $KEYHINT_SHORTCUTS or ./Shortcuts)")
	hotkeyFlag := flag.String("hotkey", hotkey.DefaultChord.String(), "Chord that toggles the overlay, e.g. ctrl+shift+h")
	looseFlag := flag.Bool("loose", false, "Toggle on any single key of the chord instead of the full chord (evdev only)")
	flag.Bool("gui", false, "Show hints in a full-screen overlay window (requires a gui build)")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	listFlag := flag.Bool("list", false, "List applications with shortcut hints and exit")
	previewFlag := flag.String("preview", "", "Print the hints for the named application and exit")
	doctorFlag := flag.Bool("doctor", false, "Run system diagnostics and exit")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	testFlag := flag.Bool("test", false, "Test mode (headless, stdin-driven)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("keyhint %s\n", version)
		os.Exit(0)
	}

	chord, err := hotkey.ParseChord(*hotkeyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	hkOpts := hotkey.Options{Chord: chord, Loose: *looseFlag}
	shortcutsDir := resolveShortcutsDir(*shortcutsFlag)

	// Resolve log directory early
	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)

	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	log.SetConsole(os.Stderr)
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()

	if *doctorFlag {
		code := doctor.Run(doctor.Config{ShortcutsDir: shortcutsDir, Hotkey: hkOpts})
		log.Close()
		os.Exit(code)
	}

	set := shortcuts.Load(shortcutsDir)

	if *listFlag {
		for _, app := range set.Apps() {
			fmt.Printf("%s\t%d\n", app, len(set[app]))
		}
		return
	}

	if *previewFlag != "" {
		if _, err := render.NewConsole(os.Stdout).Render(set.Lookup(*previewFlag), render.DefaultOrigin); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *testFlag {
		runTestMode(set)
		return
	}

	var renderer render.Renderer = render.NewConsole(os.Stdout)
	if guiRenderer != nil {
		renderer = guiRenderer
	}
	ctrl := overlay.New(set, window.New(), renderer)

	hk := hotkey.New(hkOpts)
	if err := hk.Register(); err != nil {
		log.Errorf("hotkey register error: %v", err)
		fmt.Fprintf(os.Stderr, "Error registering hotkey: %v\n", err)
		os.Exit(1)
	}
	defer hk.Unregister()

	log.SessionStart(version, chord.String(), modeName(hkOpts.Loose))
	fmt.Printf("keyhint %s: press %s to toggle shortcut hints.\n", version, chord)
	fmt.Println("Press ENTER to stop the listener...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		select {
		case <-sigChan:
		case <-shutdown.OnLine(os.Stdin):
		case <-ctx.Done():
		}
		cancel()
	}()

	if err := ctrl.Run(ctx, hk); err != nil {
		log.Errorf("controller stopped: %v", err)
	}
	hk.Unregister()
	log.SessionEnd(ctrl.Toggles())
	fmt.Println("Listener stopped.")

	if quitGUI != nil {
		quitGUI()
	}
}
