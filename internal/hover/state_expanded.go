package hover

import (
	"fmt"

	"github.com/google-admin/hover/internal/geometry"
	"github.com/google-admin/hover/internal/logger"
	"github.com/google-admin/hover/internal/menu"
	"github.com/google-admin/hover/internal/touch"
	"github.com/google-admin/hover/internal/ui"
)

// stateExpanded opens the menu: the tab shrinks into a strip of
// per-section chips across the top of a content panel anchored to the dock
// side. Strip slots switch sections, a tap anywhere outside collapses back
// to the docked tab.
type stateExpanded struct {
	env *Env

	menuSub    *menu.Subscription
	panelFrame geometry.Rect
	selIdx     int
	slotIDs    []string
}

func newStateExpanded() *stateExpanded {
	return &stateExpanded{}
}

func (s *stateExpanded) kind() StateKind {
	return StateExpanded
}

func (s *stateExpanded) takeControl(env *Env, ready func()) {
	s.env = env
	m := env.Menu()
	if m == nil || m.Len() == 0 {
		env.RequestTransition(StateClosed)
		return
	}
	ensureSelection(env)
	alive := env.Guard()
	env.WhenLayoutReady(func() {
		if !alive() {
			return
		}
		s.enterLayout(ready)
	})
}

func (s *stateExpanded) enterLayout(ready func()) {
	env := s.env
	tab := env.Tab()
	if tab == nil {
		// Entered without a live tab (a state restore straight into
		// Expanded): materialize one at the dock with no choreography.
		sec, _ := env.Menu().SectionByID(env.SelectedSection())
		tab = newFloatingTab(env.Sched(), env.Options(), sec, env.Screen(), env.Dock())
		env.SetTab(tab)
		tab.DockImmediate()
		tab.AppearImmediate()
	}

	s.panelFrame = s.computePanelFrame()
	s.selIdx = env.Menu().IndexOf(env.SelectedSection())
	if s.selIdx < 0 {
		s.selIdx = 0
	}

	tab.Shrink()
	tab.SetAlpha(1)
	s.trackRegions()
	env.Touch().Activate()
	s.menuSub = env.Menu().Subscribe(s)

	logger.Debug("hover: expanded panel at %v, slot %d", s.panelFrame, s.selIdx)
	alive := env.Guard()
	tab.MoveAnimatedTo(ui.StripSlotCenter(s.panelFrame, s.selIdx), func() {
		if alive() {
			ready()
		}
	})
}

func (s *stateExpanded) giveUpControl(next StateKind) {
	if s.menuSub != nil {
		s.menuSub.Cancel()
		s.menuSub = nil
	}
	s.env.Touch().Deactivate()
}

func (s *stateExpanded) screenChanged() {
	if s.panelFrame.Empty() {
		return
	}
	s.panelFrame = s.computePanelFrame()
	s.trackRegions()
	if tab := s.env.Tab(); tab != nil {
		tab.SetScreen(s.env.Screen())
		tab.MoveTo(ui.StripSlotCenter(s.panelFrame, s.selIdx))
	}
}

func (s *stateExpanded) computePanelFrame() geometry.Rect {
	opts := s.env.Options()
	screen := s.env.Screen()
	size := opts.PanelSize
	if size.Width > screen.Width-2 {
		size.Width = screen.Width - 2
	}
	if size.Height > screen.Height-2 {
		size.Height = screen.Height - 2
	}

	dock := s.env.Dock()
	dockPt := dock.DockPosition(screen, opts.TabSize)
	x := 1
	if dock.Side == geometry.SideRight {
		x = screen.Width - size.Width - 1
	}
	y := dockPt.Y - size.Height/2
	if y+size.Height > screen.Height {
		y = screen.Height - size.Height
	}
	if y < 0 {
		y = 0
	}
	return geometry.Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
}

// trackRegions installs the hit regions bottom-up: backdrop, panel, then
// one region per strip slot so slots win dispatch over the panel.
func (s *stateExpanded) trackRegions() {
	tch := s.env.Touch()
	for _, id := range s.slotIDs {
		tch.Forget(id)
	}
	s.slotIDs = s.slotIDs[:0]

	screen := s.env.Screen()
	tch.Track("backdrop", touch.StaticTarget(geometry.Rect{Width: screen.Width, Height: screen.Height}), backdropHandler{s})
	tch.Track("panel", touch.StaticTarget(s.panelFrame), panelHandler{})
	for i := 0; i < s.env.Menu().Len(); i++ {
		id := fmt.Sprintf("slot-%d", i)
		tch.Track(id, touch.StaticTarget(ui.StripSlotRect(s.panelFrame, i)), slotHandler{s: s, index: i})
		s.slotIDs = append(s.slotIDs, id)
	}
}

func (s *stateExpanded) selectSlot(i int) {
	env := s.env
	sec, ok := env.Menu().SectionAt(i)
	if !ok || i == s.selIdx {
		return
	}
	env.SetSelectedSection(sec.ID)
	s.selIdx = i
	if tab := env.Tab(); tab != nil {
		tab.SetSection(sec)
		tab.MoveAnimatedTo(ui.StripSlotCenter(s.panelFrame, i), nil)
	}
	logger.Debug("hover: switched to section %q (slot %d)", sec.Content.Title(), i)
}

// rebuild re-derives slots and selection after the menu changed.
func (s *stateExpanded) rebuild() {
	env := s.env
	s.selIdx = env.Menu().IndexOf(env.SelectedSection())
	if s.selIdx < 0 {
		s.selIdx = 0
	}
	if sec, ok := env.Menu().SectionByID(env.SelectedSection()); ok {
		if tab := env.Tab(); tab != nil {
			tab.SetSection(sec)
		}
	}
	s.trackRegions()
	if tab := env.Tab(); tab != nil {
		tab.MoveAnimatedTo(ui.StripSlotCenter(s.panelFrame, s.selIdx), nil)
	}
}

func (s *stateExpanded) OnInserted(index, count int) {
	s.rebuild()
}

func (s *stateExpanded) OnRemoved(index, count int) {
	env := s.env
	m := env.Menu()
	if m.Len() == 0 {
		env.RequestTransition(StateClosed)
		return
	}
	if _, ok := m.SectionByID(env.SelectedSection()); !ok {
		idx := index - 1
		if idx < 0 {
			idx = 0
		}
		if sec, ok := m.SectionAt(idx); ok {
			env.SetSelectedSection(sec.ID)
		}
	}
	s.rebuild()
}

func (s *stateExpanded) OnMoved(from, to int) {
	s.rebuild()
}

func (s *stateExpanded) OnChanged(index, count int) {
	s.rebuild()
}

func (s *stateExpanded) layers() []ui.Layer {
	m := s.env.Menu()
	if m == nil || m.Len() == 0 || s.panelFrame.Empty() {
		return nil
	}
	sections := m.Sections()
	glyphs := make([]string, len(sections))
	for i, sec := range sections {
		glyphs[i] = sec.Tab.Glyph
	}

	title, body := "", ""
	if sec, ok := m.SectionByID(s.env.SelectedSection()); ok {
		title = sec.Content.Title()
		innerWidth := s.panelFrame.Width - 2
		bodyHeight := s.panelFrame.Height - 4 // border, strip row, title row
		if bodyHeight < 0 {
			bodyHeight = 0
		}
		body = sec.Content.View(innerWidth, bodyHeight)
	}

	content := ui.RenderExpandedPanel(glyphs, s.selIdx, title, body, s.panelFrame.Size())
	if content == "" {
		return nil
	}
	return []ui.Layer{{
		Content: content,
		X:       s.panelFrame.X,
		Y:       s.panelFrame.Y,
		Z:       ui.ZPanel,
		Alpha:   1,
	}}
}

// backdropHandler collapses the menu on any tap outside the panel.
type backdropHandler struct {
	s *stateExpanded
}

func (h backdropHandler) OnTouchDown(p geometry.Point) {}
func (h backdropHandler) OnTouchUp(p geometry.Point)   {}
func (h backdropHandler) OnTap(p geometry.Point) {
	h.s.env.RequestTransition(StateCollapsed)
}

// panelHandler swallows events over the panel body so they neither reach
// the backdrop nor leak to the host.
type panelHandler struct{}

func (panelHandler) OnTouchDown(p geometry.Point) {}
func (panelHandler) OnTouchUp(p geometry.Point)   {}
func (panelHandler) OnTap(p geometry.Point)       {}

// slotHandler switches the selection to its strip slot.
type slotHandler struct {
	s     *stateExpanded
	index int
}

func (h slotHandler) OnTouchDown(p geometry.Point) {}
func (h slotHandler) OnTouchUp(p geometry.Point)   {}
func (h slotHandler) OnTap(p geometry.Point) {
	h.s.selectSlot(h.index)
}
