package hover

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/anim"
	"github.com/google-admin/hover/internal/drag"
	"github.com/google-admin/hover/internal/errors"
	"github.com/google-admin/hover/internal/geometry"
	"github.com/google-admin/hover/internal/logger"
	"github.com/google-admin/hover/internal/menu"
	"github.com/google-admin/hover/internal/touch"
	"github.com/google-admin/hover/internal/ui"
)

// View is the widget's composition root. It owns the state machine, the
// floating tab, the input machinery, and the persisted dock/selection, and
// exposes the three calls a host loop needs: HandleMouse, Step, and Layers.
//
// View is not safe for concurrent use. Hosts drive it from their update
// loop, which in bubbletea is single-threaded.
type View struct {
	store Store
	opts  Options
	menu  *menu.Menu

	dock     geometry.SidePosition
	selected menu.SectionID

	screen      geometry.Size
	layoutReady bool
	deferred    []func()

	sched   *anim.Scheduler
	dragger *drag.WindowDragger
	touch   *touch.Surface
	zone    *exitZone
	tab     *FloatingTab

	env        *Env
	current    state
	generation uint64

	exitSubs []*func()
	debug    bool
	log      *slog.Logger
}

// New builds a closed View. Dock side, dock position, and the selected
// section are restored from the Store when present; a nil Store disables
// persistence but nothing else.
func New(store Store, opts Options) *View {
	v := &View{
		store:   store,
		opts:    opts.withDefaults(),
		dock:    geometry.DefaultDock(),
		sched:   anim.NewScheduler(),
		dragger: drag.NewWindowDragger(),
		touch:   touch.NewSurface(),
		log:     logger.ComponentLogger("hover"),
	}
	v.zone = newExitZone(v.opts)
	v.loadPersisted()
	v.env = &Env{view: v}
	v.current = newStateClosed()
	v.current.takeControl(v.env, func() {})
	return v
}

func (v *View) loadPersisted() {
	if v.store == nil {
		return
	}
	if side, ok := v.store.GetInt(KeyDockSide); ok {
		v.dock.Side = geometry.SideFromInt(side)
	}
	if pct, ok := v.store.GetFloat(KeyDockPosition); ok {
		v.dock.VerticalPercent = pct
	}
	if id, ok := v.store.GetString(KeySelectedSection); ok && id != "" {
		v.selected = menu.SectionID(id)
	}
}

// SetMenu attaches the section model. A nil or empty menu force-closes the
// widget. A non-empty menu opens it when closed; when already open the
// current state is re-entered so its subscriptions bind to the new model.
func (v *View) SetMenu(m *menu.Menu) {
	v.menu = m
	if m == nil || m.Len() == 0 {
		if v.current.kind() != StateClosed {
			v.transitionTo(StateClosed)
		}
		return
	}
	if v.current.kind() == StateClosed {
		v.transitionTo(StateCollapsed)
		return
	}
	v.transitionTo(v.current.kind())
}

// Menu returns the attached section model, nil before SetMenu.
func (v *View) Menu() *menu.Menu {
	return v.menu
}

// SelectedSection returns the ID of the section the expanded panel shows.
// Empty until a menu has been attached.
func (v *View) SelectedSection() menu.SectionID {
	return v.selected
}

// StateKind reports which state currently holds control.
func (v *View) StateKind() StateKind {
	return v.current.kind()
}

// Collapse moves to the docked-tab state. From Closed this opens the
// widget, which requires a non-empty menu.
func (v *View) Collapse() error {
	from := v.current.kind()
	if from == StateCollapsed {
		return nil
	}
	if from == StateClosed && (v.menu == nil || v.menu.Len() == 0) {
		return errors.TransitionRejected(from.String(), StateCollapsed.String())
	}
	v.transitionTo(StateCollapsed)
	return nil
}

// Expand opens the section panel. Rejected while Closed.
func (v *View) Expand() error {
	from := v.current.kind()
	if from == StateExpanded {
		return nil
	}
	if from == StateClosed {
		return errors.TransitionRejected(from.String(), StateExpanded.String())
	}
	v.transitionTo(StateExpanded)
	return nil
}

// Preview shows the peek bubble beside the docked tab. Only reachable from
// Collapsed.
func (v *View) Preview() error {
	from := v.current.kind()
	if from == StatePreviewed {
		return nil
	}
	if from != StateCollapsed {
		return errors.TransitionRejected(from.String(), StatePreviewed.String())
	}
	v.transitionTo(StatePreviewed)
	return nil
}

// Close hides the widget. Always allowed and never an error, so hosts can
// call it unconditionally on teardown.
func (v *View) Close() error {
	if v.current.kind() == StateClosed {
		return nil
	}
	v.transitionTo(StateClosed)
	return nil
}

// transitionTo performs the control handshake: bump the generation so
// guarded continuations of the old state go stale, give up the old state,
// hand control to the new one. takeControl may itself request another
// transition, so nothing runs after it.
func (v *View) transitionTo(k StateKind) {
	from := v.current.kind()
	v.log.Debug("transition", "from", from.String(), "to", k.String())
	v.generation++
	old := v.current
	next := newState(k)
	v.current = next
	old.giveUpControl(k)
	alive := v.guard()
	next.takeControl(v.env, func() {
		if alive() {
			v.log.Debug("settled", "state", k.String())
		}
	})
}

func (v *View) guard() func() bool {
	gen := v.generation
	return func() bool {
		return gen == v.generation
	}
}

func (v *View) whenLayoutReady(fn func()) {
	if v.layoutReady {
		fn()
		return
	}
	v.deferred = append(v.deferred, fn)
}

// SetScreenSize delivers the host's size. The first nonzero size flushes
// work queued before layout; later sizes notify the current state so it can
// re-derive dock and panel geometry.
func (v *View) SetScreenSize(width, height int) {
	v.screen = geometry.Size{Width: width, Height: height}
	first := !v.layoutReady
	v.layoutReady = width > 0 && height > 0
	if !v.layoutReady {
		return
	}
	if v.tab != nil {
		v.tab.SetScreen(v.screen)
	}
	if v.zone.Active() {
		v.zone.Activate(v.screen)
	}
	if first {
		pending := v.deferred
		v.deferred = nil
		for _, fn := range pending {
			fn()
		}
		return
	}
	if s, ok := v.current.(screenSensitive); ok {
		s.screenChanged()
	}
}

// HandleMouse feeds one mouse message through the widget's input layers.
// The dragger gets first claim so an in-flight drag is never stolen by a
// touch region underneath it. Returns true when the widget consumed the
// message; hosts should skip their own mouse handling in that case.
func (v *View) HandleMouse(msg tea.MouseMsg) bool {
	if v.dragger.HandleMouse(msg) {
		return true
	}
	return v.touch.HandleMouse(msg)
}

// Step advances animations to now and reports whether any are still
// running. Hosts keep their tick loop alive while it returns true.
func (v *View) Step(now time.Time) bool {
	return v.sched.Step(now)
}

// Animating reports whether any animation is in flight without advancing
// time.
func (v *View) Animating() bool {
	return v.sched.Active()
}

// Dragging reports whether a press is currently being tracked as a drag.
func (v *View) Dragging() bool {
	return v.dragger.Dragging()
}

// Layers returns the widget's render layers for this frame in no
// particular order; the compositor sorts by Z. Nil before the first screen
// size and while closed with nothing in flight.
func (v *View) Layers() []ui.Layer {
	if !v.layoutReady {
		return nil
	}
	var out []ui.Layer
	if l, ok := v.current.(layerer); ok {
		out = append(out, l.layers()...)
	}
	if v.zone.Active() {
		fr := v.zone.Frame()
		out = append(out, ui.Layer{
			Content: ui.RenderExitZone(fr.Size()),
			X:       fr.X,
			Y:       fr.Y,
			Z:       ui.ZExitZone,
			Alpha:   1,
		})
	}
	if v.tab != nil && v.tab.Visible() {
		if fr := v.tab.Frame(); !fr.Empty() {
			out = append(out, ui.Layer{
				Content: ui.RenderTab(v.tab.Section().Tab.Glyph, fr.Size()),
				X:       fr.X,
				Y:       fr.Y,
				Z:       ui.ZTab,
				Alpha:   v.tab.Alpha(),
			})
		}
	}
	if v.touch.Debug() {
		for _, r := range v.touch.Regions() {
			out = append(out, ui.Layer{
				Content: ui.RenderDebugTint(r.ID, r.Bounds.Size()),
				X:       r.Bounds.X,
				Y:       r.Bounds.Y,
				Z:       ui.ZDebug,
				Alpha:   0.5,
			})
		}
	}
	return out
}

// OnExit registers a listener for the user dismissing the widget through
// the exit zone. Programmatic Close does not fire it.
func (v *View) OnExit(fn func()) *Sub {
	ptr := &fn
	v.exitSubs = append(v.exitSubs, ptr)
	return &Sub{cancel: func() {
		for i, p := range v.exitSubs {
			if p == ptr {
				v.exitSubs = append(v.exitSubs[:i], v.exitSubs[i+1:]...)
				return
			}
		}
	}}
}

func (v *View) fireExit() {
	subs := make([]*func(), len(v.exitSubs))
	copy(subs, v.exitSubs)
	for _, p := range subs {
		(*p)()
	}
}

// SaveState snapshots dock and selection in a host-storable form.
func (v *View) SaveState() Memento {
	return Memento{
		DockSide:        int(v.dock.Side),
		DockPercent:     v.dock.VerticalPercent,
		SelectedSection: string(v.selected),
	}
}

// RestoreState applies a snapshot, persists it, and re-enters the current
// state when open so the tab re-docks at the restored position.
func (v *View) RestoreState(m Memento) {
	v.setDock(geometry.SidePosition{
		Side:            geometry.SideFromInt(m.DockSide),
		VerticalPercent: m.DockPercent,
	})
	if m.SelectedSection != "" {
		v.setSelected(menu.SectionID(m.SelectedSection))
	}
	if v.current.kind() != StateClosed {
		v.transitionTo(v.current.kind())
	}
}

// SetDebug toggles hit-region tinting and input tracing.
func (v *View) SetDebug(on bool) {
	v.debug = on
	v.touch.SetDebug(on)
	v.dragger.SetDebug(on)
}

func (v *View) setDock(dock geometry.SidePosition) {
	v.dock = dock
	if v.store == nil {
		return
	}
	if err := v.store.SetInt(KeyDockSide, int(dock.Side)); err != nil {
		v.log.Warn("persist dock side", "error", err)
	}
	if err := v.store.SetFloat(KeyDockPosition, dock.VerticalPercent); err != nil {
		v.log.Warn("persist dock position", "error", err)
	}
}

func (v *View) setSelected(id menu.SectionID) {
	v.selected = id
	if v.store == nil {
		return
	}
	if err := v.store.SetString(KeySelectedSection, string(id)); err != nil {
		v.log.Warn("persist selected section", "error", err)
	}
}

func newState(k StateKind) state {
	switch k {
	case StateCollapsed:
		return newStateCollapsed()
	case StateExpanded:
		return newStateExpanded()
	case StatePreviewed:
		return newStatePreviewed()
	default:
		return newStateClosed()
	}
}
