package hover

import (
	"math"

	"charm.land/lipgloss/v2"

	"github.com/google-admin/hover/internal/anim"
	"github.com/google-admin/hover/internal/geometry"
	"github.com/google-admin/hover/internal/logger"
	"github.com/google-admin/hover/internal/menu"
	"github.com/google-admin/hover/internal/ui"
)

// statePreviewed keeps the docked tab and lays a message bubble beside it
// on the dock's inner side. Dragging the bubble horizontally fades it out;
// a release past CloseDistance dismisses the widget, anything closer
// springs back to rest. Tapping the bubble or the tab expands the menu.
type statePreviewed struct {
	core collapsedCore
	env  *Env

	menuSub *menu.Subscription
	content string
	size    geometry.Size

	offsetX     float64
	alpha       float64
	snap        *anim.Handle
	pressX      int
	startOffset float64
}

func newStatePreviewed() *statePreviewed {
	return &statePreviewed{alpha: 1}
}

func (s *statePreviewed) kind() StateKind {
	return StatePreviewed
}

func (s *statePreviewed) takeControl(env *Env, ready func()) {
	s.env = env
	s.alpha = 1
	s.offsetX = 0
	s.core.owner = "previewed"
	s.core.enter(env, func() {
		s.activate()
		ready()
	})
}

func (s *statePreviewed) activate() {
	env := s.env
	s.refreshBubble()
	// The core's subscription runs first and fixes the selection; this
	// one re-renders the bubble afterwards.
	s.menuSub = env.Menu().Subscribe(previewWatcher{s})
	env.Dragger().Activate(s, s)
	env.Touch().Track("preview-tab", env.Tab(), s)
	env.Touch().Activate()
}

func (s *statePreviewed) giveUpControl(next StateKind) {
	s.cancelSnap()
	if s.menuSub != nil {
		s.menuSub.Cancel()
		s.menuSub = nil
	}
	s.core.exit()
	s.env.Dragger().Deactivate()
	s.env.Touch().Deactivate()
}

func (s *statePreviewed) screenChanged() {
	tab := s.env.Tab()
	if tab == nil {
		return
	}
	tab.SetDock(s.env.Dock())
	tab.DockImmediate()
	s.refreshBubble()
}

func (s *statePreviewed) refreshBubble() {
	sec, ok := s.env.Menu().SectionByID(s.env.SelectedSection())
	if !ok {
		s.content, s.size = "", geometry.Size{}
		return
	}
	title, body := sec.Content.Title(), ""
	if sec.Preview != nil {
		title, body = sec.Preview.Title, sec.Preview.Body
	}
	s.content = ui.RenderPreviewBubble(title, body, s.env.Options().PreviewWidth)
	s.size = geometry.Size{Width: lipgloss.Width(s.content), Height: lipgloss.Height(s.content)}
}

// Frame is the bubble's live rectangle; the window dragger hit-tests
// against it.
func (s *statePreviewed) Frame() geometry.Rect {
	return s.bubbleFrame()
}

func (s *statePreviewed) bubbleFrame() geometry.Rect {
	tab := s.env.Tab()
	if tab == nil || s.size.Empty() {
		return geometry.Rect{}
	}
	tf := tab.Frame()
	if tf.Empty() {
		return geometry.Rect{}
	}
	var x int
	if s.env.Dock().Side == geometry.SideRight {
		x = tf.X - 1 - s.size.Width
	} else {
		x = tf.X + tf.Width + 1
	}
	y := tf.Y + (tf.Height-s.size.Height)/2
	screen := s.env.Screen()
	if y+s.size.Height > screen.Height {
		y = screen.Height - s.size.Height
	}
	if y < 0 {
		y = 0
	}
	return geometry.Rect{
		X:      x + int(math.Round(s.offsetX)),
		Y:      y,
		Width:  s.size.Width,
		Height: s.size.Height,
	}
}

func (s *statePreviewed) OnPress(p geometry.Point) {
	s.core.interact()
	s.cancelSnap()
}

func (s *statePreviewed) OnDragStart(p geometry.Point) {
	s.pressX = p.X
	s.startOffset = s.offsetX
}

func (s *statePreviewed) OnDragTo(p geometry.Point) {
	s.offsetX = s.startOffset + float64(p.X-s.pressX)
	s.alpha = bubbleAlpha(s.offsetX, s.env.Options().FadeDistance)
}

func (s *statePreviewed) OnReleasedAt(p geometry.Point) {
	opts := s.env.Options()
	if math.Abs(s.offsetX) > opts.CloseDistance {
		logger.Debug("hover: preview dismissed at offset %.0f", s.offsetX)
		s.env.RequestTransition(StateClosed)
		return
	}
	alive := s.env.Guard()
	s.snap = s.env.Sched().Spring(anim.SpringConfig{
		From:   s.offsetX,
		Target: 0,
		OnUpdate: func(v float64) {
			if !alive() {
				return
			}
			s.offsetX = v
			s.alpha = bubbleAlpha(v, opts.FadeDistance)
		},
		OnComplete: func() {
			if !alive() {
				return
			}
			s.offsetX = 0
			s.alpha = 1
		},
	})
}

// OnTap serves both gestures that expand the menu: a tap on the bubble
// (via the dragger) and a tap on the tab (via the touch region).
func (s *statePreviewed) OnTap(p geometry.Point) {
	s.core.interact()
	s.env.RequestTransition(StateExpanded)
}

func (s *statePreviewed) OnTouchDown(p geometry.Point) {
	s.core.interact()
}

func (s *statePreviewed) OnTouchUp(p geometry.Point) {}

func (s *statePreviewed) layers() []ui.Layer {
	fr := s.bubbleFrame()
	if fr.Empty() || s.content == "" {
		return nil
	}
	return []ui.Layer{{
		Content: s.content,
		X:       fr.X,
		Y:       fr.Y,
		Z:       ui.ZBubble,
		Alpha:   s.alpha,
	}}
}

func (s *statePreviewed) cancelSnap() {
	if s.snap != nil {
		s.snap.Cancel()
		s.snap = nil
	}
}

// bubbleAlpha is the linear fade: 1 at rest, 0 once the offset crosses the
// fade distance.
func bubbleAlpha(offset, fadeDistance float64) float64 {
	if fadeDistance <= 0 {
		return 1
	}
	f := math.Abs(offset) / fadeDistance
	if f > 1 {
		f = 1
	}
	return 1 - f
}

// previewWatcher re-renders the bubble after any menu mutation.
type previewWatcher struct {
	s *statePreviewed
}

func (w previewWatcher) OnInserted(index, count int) { w.s.refreshBubble() }
func (w previewWatcher) OnRemoved(index, count int)  { w.s.refreshBubble() }
func (w previewWatcher) OnMoved(from, to int)        { w.s.refreshBubble() }
func (w previewWatcher) OnChanged(index, count int)  { w.s.refreshBubble() }
