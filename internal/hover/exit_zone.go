package hover

import (
	"github.com/google-admin/hover/internal/geometry"
)

// exitZone is the drop target shown while a tab drag is in flight.
// Dragging within its magnet radius snaps the tab onto the target center;
// releasing there dismisses the widget.
type exitZone struct {
	opts   Options
	active bool
	frame  geometry.Rect
}

func newExitZone(opts Options) *exitZone {
	return &exitZone{opts: opts}
}

// Activate positions the zone centered near the bottom edge of the given
// screen and makes it visible.
func (z *exitZone) Activate(screen geometry.Size) {
	size := z.opts.ExitZoneSize
	x := (screen.Width - size.Width) / 2
	y := screen.Height - size.Height - 1
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	z.frame = geometry.Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
	z.active = true
}

func (z *exitZone) Deactivate() {
	z.active = false
}

func (z *exitZone) Active() bool {
	return z.active
}

func (z *exitZone) Frame() geometry.Rect {
	if !z.active {
		return geometry.Rect{}
	}
	return z.frame
}

// Target is the center the tab snaps to while magnetized.
func (z *exitZone) Target() geometry.Point {
	return z.frame.Center()
}

// Attracts reports whether a dragged point is within the magnet radius.
func (z *exitZone) Attracts(p geometry.Point) bool {
	return z.active && geometry.Dist(p, z.Target()) <= z.opts.ExitMagnetRadius
}
