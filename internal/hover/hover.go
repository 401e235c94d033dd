// Package hover implements a floating, draggable menu widget that layers
// over a host bubbletea application.
//
// The widget is a small tab docked to a screen edge. The user can drag it
// anywhere, drop it back on either edge, expand it into a sectioned panel,
// peek at a section through a preview bubble, or dismiss the whole thing by
// dropping the tab on an exit zone. Presentation is a strict state machine
// (Closed, Collapsed, Expanded, Previewed) with exactly one state in
// control at a time; ownership moves through a takeControl/giveUpControl
// handshake so draggers, touch regions and animations never leak from one
// state into the next.
//
// The host owns the event loop: it forwards mouse input to HandleMouse,
// drives animations by calling Step from its tick loop, and composites the
// widget's Layers over its own view.
package hover

import (
	"github.com/google-admin/hover/internal/ui"
)

// StateKind identifies one of the widget's presentation states.
type StateKind int

const (
	StateClosed StateKind = iota
	StateCollapsed
	StateExpanded
	StatePreviewed
)

func (k StateKind) String() string {
	switch k {
	case StateCollapsed:
		return "collapsed"
	case StateExpanded:
		return "expanded"
	case StatePreviewed:
		return "previewed"
	default:
		return "closed"
	}
}

// Persisted keys. The Store is a flat key-value surface so hosts can back
// it with whatever settings mechanism they already carry.
const (
	KeyDockSide        = "dock_side"
	KeyDockPosition    = "dock_position"
	KeySelectedSection = "selected_section"
)

// Store persists the widget's dock placement and section selection across
// runs. Getters report absence with ok=false and the widget falls back to
// defaults. Write failures are logged and otherwise ignored: persistence
// must never break presentation.
type Store interface {
	GetInt(key string) (int, bool)
	GetFloat(key string) (float64, bool)
	GetString(key string) (string, bool)
	SetInt(key string, value int) error
	SetFloat(key string, value float64) error
	SetString(key string, value string) error
}

// Memento is an in-process snapshot of the restorable widget state, the
// same three values the Store persists.
type Memento struct {
	DockSide        int
	DockPercent     float64
	SelectedSection string
}

// Sub is a cancellable subscription handle.
type Sub struct {
	cancel func()
}

// Cancel removes the subscription. Safe to call more than once.
func (s *Sub) Cancel() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// state is one presentation variant. takeControl hands it the capability
// surface and a ready callback to invoke once its entry choreography
// settles; giveUpControl tells it to release everything it acquired before
// the next state takes over. Both run synchronously on the host's update
// loop. A state that requests a transition from inside takeControl must
// return immediately afterwards.
type state interface {
	kind() StateKind
	takeControl(env *Env, ready func())
	giveUpControl(next StateKind)
}

// layerer is implemented by states that contribute render layers beyond
// the shared tab.
type layerer interface {
	layers() []ui.Layer
}

// screenSensitive is implemented by states that re-derive geometry when
// the screen size changes.
type screenSensitive interface {
	screenChanged()
}
