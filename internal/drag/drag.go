// Package drag translates raw pointer input into semantic gestures.
//
// A dragger watches bubbletea mouse messages on behalf of one tracked
// control and resolves each press/release cycle into either a tap or a drag
// sequence. Exactly one of OnTap or OnDragStart..OnReleasedAt fires per
// cycle, never both.
package drag

import (
	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/geometry"
	"github.com/google-admin/hover/internal/logger"
)

// TouchSlop is the pointer movement, in cells, at which a press becomes a
// drag instead of a tap.
const TouchSlop = 1

// Listener receives the semantic gestures a dragger resolves.
//
// A press inside the control delivers OnPress. If the pointer then moves
// TouchSlop or more from the press point, OnDragStart fires once, OnDragTo
// fires for every subsequent movement event (one call per input event, never
// coalesced), and OnReleasedAt fires when the pointer lifts. A release that
// never crossed the slop delivers OnTap instead.
type Listener interface {
	OnPress(p geometry.Point)
	OnDragStart(p geometry.Point)
	OnDragTo(p geometry.Point)
	OnReleasedAt(p geometry.Point)
	OnTap(p geometry.Point)
}

// TrackedControl is the visual target a dragger intercepts input for.
// Presses are hit-tested against the live frame, so the hit region follows
// the control as it animates.
type TrackedControl interface {
	Frame() geometry.Rect
}

// gesture resolves one press/release cycle for a single control.
type gesture struct {
	listener Listener
	control  TrackedControl
	pressed  bool
	dragging bool
	pressAt  geometry.Point
}

func (g *gesture) press(p geometry.Point) bool {
	if g.listener == nil || g.control == nil {
		return false
	}
	if !g.control.Frame().Contains(p) {
		return false
	}
	g.pressed = true
	g.dragging = false
	g.pressAt = p
	g.listener.OnPress(p)
	return true
}

func (g *gesture) move(p geometry.Point) bool {
	if !g.pressed {
		return false
	}
	if !g.dragging {
		if !exceedsSlop(g.pressAt, p) {
			return true
		}
		g.dragging = true
		g.listener.OnDragStart(p)
		return true
	}
	g.listener.OnDragTo(p)
	return true
}

func (g *gesture) release(p geometry.Point) bool {
	if !g.pressed {
		return false
	}
	dragging := g.dragging
	g.pressed = false
	g.dragging = false
	if dragging {
		g.listener.OnReleasedAt(p)
	} else {
		g.listener.OnTap(p)
	}
	return true
}

func exceedsSlop(from, to geometry.Point) bool {
	dx := to.X - from.X
	if dx < 0 {
		dx = -dx
	}
	dy := to.Y - from.Y
	if dy < 0 {
		dy = -dy
	}
	return dx >= TouchSlop || dy >= TouchSlop
}

// WindowDragger resolves gestures anywhere on the screen for a control that
// floats over all other content.
type WindowDragger struct {
	g      gesture
	active bool
	debug  bool
}

// NewWindowDragger returns an inactive dragger.
func NewWindowDragger() *WindowDragger {
	return &WindowDragger{}
}

// Activate begins resolving gestures on control, delivering them to
// listener. Activating again replaces the previous listener and control.
func (d *WindowDragger) Activate(listener Listener, control TrackedControl) {
	d.active = true
	d.g = gesture{listener: listener, control: control}
	logger.Debug("drag: window dragger activated")
}

// Deactivate stops intercepting input. Idempotent. A gesture in flight is
// abandoned without further callbacks.
func (d *WindowDragger) Deactivate() {
	if !d.active {
		return
	}
	d.active = false
	d.g = gesture{}
	logger.Debug("drag: window dragger deactivated")
}

// Active reports whether the dragger is intercepting input.
func (d *WindowDragger) Active() bool {
	return d.active
}

// Dragging reports whether a gesture is currently in flight. Callers use
// this to avoid repositioning the control out from under the pointer.
func (d *WindowDragger) Dragging() bool {
	return d.active && d.g.pressed
}

// SetDebug toggles per-event gesture logging.
func (d *WindowDragger) SetDebug(v bool) {
	d.debug = v
}

// HandleMouse consumes one mouse message and reports whether the dragger
// used it. Unconsumed messages belong to the host application.
func (d *WindowDragger) HandleMouse(msg tea.MouseMsg) bool {
	if !d.active {
		return false
	}
	switch m := msg.(type) {
	case tea.MouseClickMsg:
		if m.Button != tea.MouseLeft {
			return false
		}
		consumed := d.g.press(geometry.Point{X: m.X, Y: m.Y})
		if consumed && d.debug {
			logger.Debug("drag: press at (%d,%d)", m.X, m.Y)
		}
		return consumed
	case tea.MouseMotionMsg:
		return d.g.move(geometry.Point{X: m.X, Y: m.Y})
	case tea.MouseReleaseMsg:
		consumed := d.g.release(geometry.Point{X: m.X, Y: m.Y})
		if consumed && d.debug {
			logger.Debug("drag: release at (%d,%d)", m.X, m.Y)
		}
		return consumed
	}
	return false
}
