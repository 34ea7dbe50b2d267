// Package overlay owns the Hidden/Visible toggle of the hint overlay.
package overlay

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"keyhint/hotkey"
	"keyhint/log"
	"keyhint/render"
	"keyhint/shortcuts"
	"keyhint/window"
)

type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// ErrBusy is returned by Toggle when another toggle is still in progress.
var ErrBusy = errors.New("overlay toggle already in progress")

// Controller shows the hints for the focused application on one toggle and
// tears the surface down on the next.
type Controller struct {
	set      shortcuts.Set
	probe    window.Probe
	renderer render.Renderer
	origin   render.Point

	// mu is held for the whole of a transition; Toggle uses TryLock so a
	// toggle arriving mid-transition is dropped instead of queued.
	mu      sync.Mutex
	state   State
	surface render.Surface
	toggles int
}

func New(set shortcuts.Set, probe window.Probe, renderer render.Renderer) *Controller {
	return &Controller{
		set:      set,
		probe:    probe,
		renderer: renderer,
		origin:   render.DefaultOrigin,
	}
}

// SetOrigin moves the first row. Call before the first Toggle.
func (c *Controller) SetOrigin(p render.Point) {
	c.mu.Lock()
	c.origin = p
	c.mu.Unlock()
}

// Toggle flips the overlay. When rendering fails the overlay stays hidden.
func (c *Controller) Toggle() error {
	if !c.mu.TryLock() {
		return ErrBusy
	}
	defer c.mu.Unlock()

	if c.state == Visible {
		if c.surface != nil {
			c.surface.Close()
		}
		c.surface = nil
		c.state = Hidden
		c.toggles++
		log.Toggle(Hidden.String(), "", 0)
		return nil
	}

	app := c.probe.ActiveTitle()
	entries := c.set.Lookup(app)
	surface, err := c.renderer.Render(entries, c.origin)
	if err != nil {
		return fmt.Errorf("rendering overlay for %q: %w", app, err)
	}
	c.surface = surface
	c.state = Visible
	c.toggles++
	log.Toggle(Visible.String(), app, len(entries))
	return nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Visible() bool {
	return c.State() == Visible
}

// Toggles returns the number of completed transitions.
func (c *Controller) Toggles() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.toggles
}

// Run toggles the overlay on every chord press until ctx is cancelled. An
// overlay left open at cancellation is not closed.
func (c *Controller) Run(ctx context.Context, hk hotkey.Hotkey) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-hk.Keydown():
			if err := c.Toggle(); err != nil {
				if errors.Is(err, ErrBusy) {
					log.Info("toggle dropped: busy")
					continue
				}
				log.Errorf("toggle failed: %v", err)
			}
		}
	}
}
