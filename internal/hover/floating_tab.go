package hover

import (
	"math"

	"github.com/fogleman/ease"

	"github.com/google-admin/hover/internal/anim"
	"github.com/google-admin/hover/internal/geometry"
	"github.com/google-admin/hover/internal/menu"
)

// FloatingTab is the draggable tab itself: a mutable center position, a
// scale for appear/disappear, an alpha for idle dimming, and a full/shrunk
// size variant. All public position APIs speak center coordinates and
// convert to corner form only for rendering and hit testing.
//
// The tab implements drag.TrackedControl and touch.Target so draggers and
// touch regions can follow it live.
type FloatingTab struct {
	sched *anim.Scheduler
	opts  Options

	section menu.Section
	screen  geometry.Size
	dock    geometry.SidePosition

	cx, cy  float64
	scale   float64
	alpha   float64
	shrunk  bool
	visible bool

	appearing    *anim.Handle
	disappearing *anim.Handle
	moving       *anim.Handle

	frameSubs []*func()
}

func newFloatingTab(sched *anim.Scheduler, opts Options, section menu.Section, screen geometry.Size, dock geometry.SidePosition) *FloatingTab {
	return &FloatingTab{
		sched:   sched,
		opts:    opts,
		section: section,
		screen:  screen,
		dock:    dock,
		alpha:   1,
	}
}

// Section returns the menu section the tab currently represents.
func (t *FloatingTab) Section() menu.Section {
	return t.section
}

// SetSection swaps the section the tab represents, changing its glyph.
func (t *FloatingTab) SetSection(section menu.Section) {
	t.section = section
}

// SetScreen records the screen bounds dock positions are derived from.
func (t *FloatingTab) SetScreen(screen geometry.Size) {
	t.screen = screen
}

// SetDock updates the dock the tab glides back to, without moving it.
func (t *FloatingTab) SetDock(dock geometry.SidePosition) {
	t.dock = dock
}

// DockTarget is the center the tab's dock resolves to on the current
// screen, rounded to whole cells. Docking itself keeps the fractional
// center so an edge-flush box never rounds off screen.
func (t *FloatingTab) DockTarget() geometry.Point {
	return t.dock.DockPosition(t.screen, t.baseSize())
}

func (t *FloatingTab) dockCenter() (cx, cy float64) {
	return t.dock.DockCenter(t.screen, t.baseSize())
}

func (t *FloatingTab) baseSize() geometry.Size {
	if t.shrunk {
		return t.opts.ShrunkTabSize
	}
	return t.opts.TabSize
}

// Size is the tab's current box: the full or shrunk variant, scaled down
// while an appear or disappear runs. Empty while hidden.
func (t *FloatingTab) Size() geometry.Size {
	if !t.visible || t.scale <= 0 {
		return geometry.Size{}
	}
	base := t.baseSize()
	if t.scale >= 1 {
		return base
	}
	w := int(math.Round(t.scale * float64(base.Width)))
	h := int(math.Round(t.scale * float64(base.Height)))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return geometry.Size{Width: w, Height: h}
}

// Frame is the tab's screen rectangle, empty while hidden.
func (t *FloatingTab) Frame() geometry.Rect {
	size := t.Size()
	if size.Empty() {
		return geometry.Rect{}
	}
	return geometry.RectForCenter(t.cx, t.cy, size)
}

// Center is the tab's center rounded to whole cells.
func (t *FloatingTab) Center() geometry.Point {
	return geometry.Point{X: int(math.Round(t.cx)), Y: int(math.Round(t.cy))}
}

// Visible reports whether the tab occupies any cells.
func (t *FloatingTab) Visible() bool {
	return t.visible && t.scale > 0
}

// Alpha is the tab's current opacity.
func (t *FloatingTab) Alpha() float64 {
	return t.alpha
}

// SetAlpha clamps and applies an opacity, used by idle dimming.
func (t *FloatingTab) SetAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	t.alpha = a
}

// MoveTo places the center instantly, cancelling any glide in flight.
func (t *FloatingTab) MoveTo(p geometry.Point) {
	t.cancelMove()
	t.cx, t.cy = float64(p.X), float64(p.Y)
	t.notifyFrame()
}

// MoveAnimatedTo glides the center to target with an overshoot ease,
// notifying frame subscribers on every step so dependent overlays track
// the tab live. onArrived fires exactly once: on completion, or
// immediately when the tab is already at the target. Starting a new glide
// cancels the previous one.
func (t *FloatingTab) MoveAnimatedTo(target geometry.Point, onArrived func()) {
	t.glideTo(float64(target.X), float64(target.Y), onArrived)
}

func (t *FloatingTab) glideTo(toX, toY float64, onArrived func()) {
	t.cancelMove()
	fromX, fromY := t.cx, t.cy
	if fromX == toX && fromY == toY {
		if onArrived != nil {
			onArrived()
		}
		return
	}
	t.moving = t.sched.Tween(anim.TweenConfig{
		From:     0,
		To:       1,
		Duration: t.opts.DockDuration,
		Ease:     ease.OutBack,
		OnUpdate: func(v float64) {
			t.cx = fromX + (toX-fromX)*v
			t.cy = fromY + (toY-fromY)*v
			t.notifyFrame()
		},
		OnComplete: func() {
			t.moving = nil
			if onArrived != nil {
				onArrived()
			}
		},
	})
}

// Dock glides the tab back to its dock's computed position.
func (t *FloatingTab) Dock(onDocked func()) {
	cx, cy := t.dockCenter()
	t.glideTo(cx, cy, onDocked)
}

// DockImmediate snaps to the dock position, used on screen-size changes.
func (t *FloatingTab) DockImmediate() {
	t.cancelMove()
	t.cx, t.cy = t.dockCenter()
	t.notifyFrame()
}

// Appear scales the tab in. Starting an appear cancels an in-flight
// disappear; a second appear while one runs restarts from the current
// scale and supersedes the pending onShown, so the caller's callback is
// always the one delivered. When the tab is already fully shown, onShown
// fires immediately.
func (t *FloatingTab) Appear(onShown func()) {
	t.cancelAppear()
	t.cancelDisappear()
	t.visible = true
	if t.scale >= 1 {
		t.scale = 1
		if onShown != nil {
			onShown()
		}
		return
	}
	t.appearing = t.sched.Tween(anim.TweenConfig{
		From:     t.scale,
		To:       1,
		Duration: t.opts.AppearDuration,
		Ease:     ease.OutBack,
		OnUpdate: func(v float64) {
			t.scale = v
			t.notifyFrame()
		},
		OnComplete: func() {
			t.appearing = nil
			t.scale = 1
			t.notifyFrame()
			if onShown != nil {
				onShown()
			}
		},
	})
}

// AppearImmediate shows the tab at full size with no animation.
func (t *FloatingTab) AppearImmediate() {
	t.cancelAppear()
	t.cancelDisappear()
	t.visible = true
	t.scale = 1
	t.notifyFrame()
}

// Disappear scales the tab out and hides it. Starting a disappear cancels
// an in-flight appear; a second disappear while one runs is a no-op. When
// the tab is already hidden, onHidden fires immediately.
func (t *FloatingTab) Disappear(onHidden func()) {
	if t.disappearing != nil && t.disappearing.Active() {
		return
	}
	t.cancelAppear()
	if !t.visible || t.scale <= 0 {
		t.visible = false
		t.scale = 0
		if onHidden != nil {
			onHidden()
		}
		return
	}
	t.disappearing = t.sched.Tween(anim.TweenConfig{
		From:     t.scale,
		To:       0,
		Duration: t.opts.AppearDuration,
		Ease:     ease.InBack,
		OnUpdate: func(v float64) {
			t.scale = v
			t.notifyFrame()
		},
		OnComplete: func() {
			t.disappearing = nil
			t.scale = 0
			t.visible = false
			t.notifyFrame()
			if onHidden != nil {
				onHidden()
			}
		},
	})
}

// DisappearImmediate hides the tab with no animation.
func (t *FloatingTab) DisappearImmediate() {
	t.cancelAppear()
	t.cancelDisappear()
	t.visible = false
	t.scale = 0
	t.notifyFrame()
}

// Shrink switches the tab to its strip-sized variant.
func (t *FloatingTab) Shrink() {
	if t.shrunk {
		return
	}
	t.shrunk = true
	t.notifyFrame()
}

// Expand restores the full-size variant.
func (t *FloatingTab) Expand() {
	if !t.shrunk {
		return
	}
	t.shrunk = false
	t.notifyFrame()
}

// Shrunk reports whether the strip-sized variant is active.
func (t *FloatingTab) Shrunk() bool {
	return t.shrunk
}

// OnFrameChange registers fn to run whenever the tab's frame changes
// through movement, scaling or size-variant switches. The returned cancel
// is idempotent.
func (t *FloatingTab) OnFrameChange(fn func()) func() {
	f := &fn
	t.frameSubs = append(t.frameSubs, f)
	return func() {
		for i, sub := range t.frameSubs {
			if sub == f {
				t.frameSubs = append(t.frameSubs[:i], t.frameSubs[i+1:]...)
				return
			}
		}
	}
}

// notifyFrame iterates a snapshot so subscribers may unsubscribe from
// inside their callback.
func (t *FloatingTab) notifyFrame() {
	subs := make([]*func(), len(t.frameSubs))
	copy(subs, t.frameSubs)
	for _, sub := range subs {
		(*sub)()
	}
}

func (t *FloatingTab) cancelMove() {
	if t.moving != nil {
		t.moving.Cancel()
		t.moving = nil
	}
}

func (t *FloatingTab) cancelAppear() {
	if t.appearing != nil {
		t.appearing.Cancel()
		t.appearing = nil
	}
}

func (t *FloatingTab) cancelDisappear() {
	if t.disappearing != nil {
		t.disappearing.Cancel()
		t.disappearing = nil
	}
}
