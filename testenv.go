package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"keyhint/hotkey"
	"keyhint/log"
	"keyhint/overlay"
	"keyhint/render"
	"keyhint/shortcuts"
	"keyhint/window"
)

// scriptedProbe reports whatever title the last APP command set.
type scriptedProbe struct {
	mu    sync.Mutex
	title string
}

func (p *scriptedProbe) set(title string) {
	p.mu.Lock()
	p.title = title
	p.mu.Unlock()
}

func (p *scriptedProbe) ActiveTitle() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.title == "" {
		return window.Default
	}
	return p.title
}

// runTestMode drives the controller from stdin:
//
//	APP <title>   set the active window title
//	TOGGLE        press the chord and wait for the transition
//	QUIT          stop
func runTestMode(set shortcuts.Set) {
	log.SessionStart(version, "fake", "test")

	probe := &scriptedProbe{}
	ctrl := overlay.New(set, probe, render.NewConsole(os.Stdout))
	hk := hotkey.NewFake()
	hk.Register()
	defer hk.Unregister()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer cancel()
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			cmd := strings.TrimSpace(scanner.Text())
			switch {
			case strings.HasPrefix(cmd, "APP "):
				probe.set(strings.TrimSpace(cmd[4:]))
			case cmd == "TOGGLE":
				before := ctrl.Toggles()
				hk.SimKeydown()
				deadline := time.Now().Add(2 * time.Second)
				for ctrl.Toggles() == before && time.Now().Before(deadline) {
					time.Sleep(time.Millisecond)
				}
				fmt.Printf("STATE %s\n", ctrl.State())
			case cmd == "QUIT":
				return
			}
		}
	}()

	ctrl.Run(ctx, hk)
	log.SessionEnd(ctrl.Toggles())
}
