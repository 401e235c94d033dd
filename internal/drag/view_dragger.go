package drag

import (
	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/geometry"
	"github.com/google-admin/hover/internal/logger"
)

// ViewDragger resolves gestures for a control embedded inside a parent
// container. Pointer coordinates are translated into container-local space
// before hit-testing and delivery, so the control's frame and every listener
// callback speak local coordinates.
//
// Presses outside the container are ignored. Once a gesture is in flight,
// motion and release events are accepted anywhere and clamped to the
// container's bounds; dropping them mid-gesture would leave the cycle
// without its tap or release event.
type ViewDragger struct {
	container geometry.Rect
	g         gesture
	active    bool
	debug     bool
}

// NewViewDragger returns an inactive dragger confined to container, given in
// screen coordinates.
func NewViewDragger(container geometry.Rect) *ViewDragger {
	return &ViewDragger{container: container}
}

// SetContainer moves the container, for host layout changes.
func (d *ViewDragger) SetContainer(container geometry.Rect) {
	d.container = container
}

// Activate begins resolving gestures on control, delivering them to
// listener. The control's frame is container-local.
func (d *ViewDragger) Activate(listener Listener, control TrackedControl) {
	d.active = true
	d.g = gesture{listener: listener, control: control}
	logger.Debug("drag: view dragger activated within %+v", d.container)
}

// Deactivate stops intercepting input. Idempotent. A gesture in flight is
// abandoned without further callbacks.
func (d *ViewDragger) Deactivate() {
	if !d.active {
		return
	}
	d.active = false
	d.g = gesture{}
	logger.Debug("drag: view dragger deactivated")
}

// Active reports whether the dragger is intercepting input.
func (d *ViewDragger) Active() bool {
	return d.active
}

// SetDebug toggles per-event gesture logging.
func (d *ViewDragger) SetDebug(v bool) {
	d.debug = v
}

// HandleMouse consumes one mouse message, given in screen coordinates, and
// reports whether the dragger used it.
func (d *ViewDragger) HandleMouse(msg tea.MouseMsg) bool {
	if !d.active || d.container.Empty() {
		return false
	}
	switch m := msg.(type) {
	case tea.MouseClickMsg:
		if m.Button != tea.MouseLeft {
			return false
		}
		p := geometry.Point{X: m.X, Y: m.Y}
		if !d.container.Contains(p) {
			return false
		}
		consumed := d.g.press(d.toLocal(p))
		if consumed && d.debug {
			logger.Debug("drag: view press at (%d,%d)", m.X, m.Y)
		}
		return consumed
	case tea.MouseMotionMsg:
		return d.g.move(d.toLocal(d.clamp(geometry.Point{X: m.X, Y: m.Y})))
	case tea.MouseReleaseMsg:
		return d.g.release(d.toLocal(d.clamp(geometry.Point{X: m.X, Y: m.Y})))
	}
	return false
}

func (d *ViewDragger) toLocal(p geometry.Point) geometry.Point {
	return geometry.Point{X: p.X - d.container.X, Y: p.Y - d.container.Y}
}

func (d *ViewDragger) clamp(p geometry.Point) geometry.Point {
	if p.X < d.container.X {
		p.X = d.container.X
	}
	if p.X > d.container.X+d.container.Width-1 {
		p.X = d.container.X + d.container.Width - 1
	}
	if p.Y < d.container.Y {
		p.Y = d.container.Y
	}
	if p.Y > d.container.Y+d.container.Height-1 {
		p.Y = d.container.Y + d.container.Height - 1
	}
	return p
}
