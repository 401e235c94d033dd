package hover

import (
	"github.com/google-admin/hover/internal/geometry"
	"github.com/google-admin/hover/internal/logger"
)

// stateCollapsed shows the single docked tab. It owns the tab drag cycle:
// lift on drag start, magnet toward the exit zone, and on release either a
// dismissal or a re-dock on the nearer edge.
type stateCollapsed struct {
	core collapsedCore
	env  *Env
}

func newStateCollapsed() *stateCollapsed {
	return &stateCollapsed{}
}

func (s *stateCollapsed) kind() StateKind {
	return StateCollapsed
}

func (s *stateCollapsed) takeControl(env *Env, ready func()) {
	s.env = env
	s.core.owner = "collapsed"
	s.core.dragListener = s
	s.core.enter(env, ready)
}

func (s *stateCollapsed) giveUpControl(next StateKind) {
	s.core.exit()
	s.env.Dragger().Deactivate()
	s.env.ExitZone().Deactivate()
}

func (s *stateCollapsed) screenChanged() {
	tab := s.env.Tab()
	if tab == nil {
		return
	}
	if s.env.Dragger().Dragging() {
		// Mid-drag the pointer owns the position; the release handler
		// recomputes the dock against the new screen.
		return
	}
	tab.SetDock(s.env.Dock())
	tab.DockImmediate()
}

func (s *stateCollapsed) OnPress(p geometry.Point) {
	s.core.interact()
}

func (s *stateCollapsed) OnDragStart(p geometry.Point) {
	env := s.env
	s.core.cancelIdle()
	env.ExitZone().Activate(env.Screen())
	env.Tab().MoveTo(p)
	logger.Debug("hover: tab drag started at %v", p)
}

func (s *stateCollapsed) OnDragTo(p geometry.Point) {
	env := s.env
	if env.ExitZone().Attracts(p) {
		env.Tab().MoveTo(env.ExitZone().Target())
		return
	}
	env.Tab().MoveTo(p)
}

func (s *stateCollapsed) OnReleasedAt(p geometry.Point) {
	env := s.env
	zone := env.ExitZone()
	dropped := zone.Attracts(p)
	zone.Deactivate()

	if dropped {
		logger.Debug("hover: tab dropped on exit zone")
		env.FireExit()
		env.RequestTransition(StateClosed)
		return
	}

	dock := geometry.SidePositionForDrop(p, env.Screen(), env.Options().TabSize)
	env.SetDock(dock)
	tab := env.Tab()
	tab.SetDock(dock)
	alive := env.Guard()
	tab.Dock(func() {
		if alive() {
			s.core.armIdle()
		}
	})
	logger.Debug("hover: tab dropped, docking %s at %.2f", dock.Side, dock.VerticalPercent)
}

func (s *stateCollapsed) OnTap(p geometry.Point) {
	s.core.interact()
	s.env.RequestTransition(StateExpanded)
}
