package hover

import (
	"github.com/google-admin/hover/internal/anim"
	"github.com/google-admin/hover/internal/drag"
	"github.com/google-admin/hover/internal/geometry"
	"github.com/google-admin/hover/internal/menu"
	"github.com/google-admin/hover/internal/touch"
)

// Env is the capability surface a state receives while it holds control.
// States reach the shared machinery only through it, never through View
// fields.
type Env struct {
	view *View
}

// Screen is the current screen size, zero before the first SetScreenSize.
func (e *Env) Screen() geometry.Size {
	return e.view.screen
}

// LayoutReady reports whether a screen size has been delivered.
func (e *Env) LayoutReady() bool {
	return e.view.layoutReady
}

// WhenLayoutReady runs fn now when the screen size is known, otherwise
// queues it. Queued work runs in submission order on the first
// SetScreenSize.
func (e *Env) WhenLayoutReady(fn func()) {
	e.view.whenLayoutReady(fn)
}

func (e *Env) Menu() *menu.Menu {
	return e.view.menu
}

func (e *Env) Options() Options {
	return e.view.opts
}

func (e *Env) Tab() *FloatingTab {
	return e.view.tab
}

func (e *Env) SetTab(t *FloatingTab) {
	e.view.tab = t
}

func (e *Env) Dock() geometry.SidePosition {
	return e.view.dock
}

// SetDock updates the dock and persists it through the Store.
func (e *Env) SetDock(dock geometry.SidePosition) {
	e.view.setDock(dock)
}

func (e *Env) SelectedSection() menu.SectionID {
	return e.view.selected
}

// SetSelectedSection updates the selection and persists it.
func (e *Env) SetSelectedSection(id menu.SectionID) {
	e.view.setSelected(id)
}

func (e *Env) Dragger() *drag.WindowDragger {
	return e.view.dragger
}

func (e *Env) Touch() *touch.Surface {
	return e.view.touch
}

func (e *Env) Sched() *anim.Scheduler {
	return e.view.sched
}

func (e *Env) ExitZone() *exitZone {
	return e.view.zone
}

// RequestTransition asks the view to move to another state. The handshake
// runs synchronously: by the time this returns the calling state has
// already been given up, so callers must return immediately afterwards.
func (e *Env) RequestTransition(k StateKind) {
	e.view.transitionTo(k)
}

// Guard captures the current transition generation and returns a func
// reporting whether that capture is still current. Every asynchronous
// continuation a state schedules is wrapped in one; stale firings are
// silent no-ops.
func (e *Env) Guard() func() bool {
	return e.view.guard()
}

// FireExit notifies exit listeners. Called exactly once per close via the
// exit zone.
func (e *Env) FireExit() {
	e.view.fireExit()
}
