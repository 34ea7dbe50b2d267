package render

import (
	"sync"

	"keyhint/shortcuts"
)

// Surface is a displayed overlay. Close destroys it; calls after the first
// do nothing.
type Surface interface {
	Close()
}

// Renderer creates a new surface per call and paints entries on it.
type Renderer interface {
	Render(entries []shortcuts.Entry, origin Point) (Surface, error)
}

// closer adapts a release func into a Surface that runs it at most once.
type closer struct {
	once    sync.Once
	release func()
}

// OnceSurface wraps release so the returned Surface runs it at most once.
func OnceSurface(release func()) Surface {
	return &closer{release: release}
}

func (c *closer) Close() {
	c.once.Do(func() {
		if c.release != nil {
			c.release()
		}
	})
}
