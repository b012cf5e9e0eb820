package record

import (
	"errors"

	"github.com/gogpu/gxgl/gx"
)

// ErrDisplayInitialized is returned by Display.Init after the first call.
var ErrDisplayInitialized = errors.New("record: display already initialized")

// Display is a gx.Display that never touches video hardware. It reports a
// fixed mode and remembers the framebuffer flips and retraces it was asked
// for.
type Display struct {
	mode   gx.VideoMode
	inits  int
	vsyncs int
	flips  []int
}

var _ gx.Display = (*Display)(nil)

// NewDisplay creates a Display reporting mode.
func NewDisplay(mode gx.VideoMode) *Display {
	return &Display{mode: mode}
}

// Init returns the configured mode. Only the first call succeeds.
func (d *Display) Init() (gx.VideoMode, error) {
	d.inits++
	if d.inits > 1 {
		return gx.VideoMode{}, ErrDisplayInitialized
	}
	return d.mode, nil
}

// SetNextFramebuffer records the selected framebuffer.
func (d *Display) SetNextFramebuffer(framebuffer int) {
	d.flips = append(d.flips, framebuffer)
}

// WaitVSync counts a retrace and returns immediately.
func (d *Display) WaitVSync() {
	d.vsyncs++
}

// Inits returns how many times Init was called.
func (d *Display) Inits() int { return d.inits }

// VSyncs returns how many retraces were waited for.
func (d *Display) VSyncs() int { return d.vsyncs }

// Flips returns the framebuffers selected by SetNextFramebuffer, in order.
func (d *Display) Flips() []int { return d.flips }
