// Package touch provides an overlay hit-region controller.
//
// Some rendered targets cannot receive pointer input themselves because the
// compositor that draws them swallows events. A Surface keeps one
// transparent hit region per tracked target, pinned to the target's live
// frame through its change notifications, and forwards coarse touch events
// to the region's handler. There is no drag distinction at this layer: a
// down followed by an up is a tap, wherever the up lands.
package touch

import (
	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/geometry"
	"github.com/google-admin/hover/internal/logger"
)

// Target is a visual element a hit region is pinned to.
type Target interface {
	// Frame returns the target's current bounding box.
	Frame() geometry.Rect

	// OnFrameChange registers fn to run whenever the frame moves or
	// resizes. The returned cancel removes the registration.
	OnFrameChange(fn func()) (cancel func())
}

// Handler receives the coarse touch events for one region.
type Handler interface {
	OnTouchDown(p geometry.Point)
	OnTouchUp(p geometry.Point)
	OnTap(p geometry.Point)
}

// StaticTarget wraps a fixed rectangle as a Target for regions that never
// move on their own.
type StaticTarget geometry.Rect

func (t StaticTarget) Frame() geometry.Rect {
	return geometry.Rect(t)
}

func (t StaticTarget) OnFrameChange(fn func()) (cancel func()) {
	return func() {}
}

// TrackedRegion describes one live hit region, for the debug tint overlay.
type TrackedRegion struct {
	ID     string
	Bounds geometry.Rect
}

type region struct {
	id     string
	target Target
	h      Handler
	bounds geometry.Rect
	unsub  func()
}

// Surface owns the hit regions. Regions tracked later sit above earlier
// ones; dispatch walks top-most first and the first region containing the
// point consumes the event.
type Surface struct {
	regions   []*region
	active    bool
	debug     bool
	pressedID string
}

// NewSurface returns an inactive surface with no regions.
func NewSurface() *Surface {
	return &Surface{}
}

// Activate enables dispatch. A no-op while already active.
func (s *Surface) Activate() {
	if s.active {
		return
	}
	s.active = true
	logger.Debug("touch: surface activated")
}

// Deactivate destroys every region, unsubscribes from their targets, and
// disables dispatch. Idempotent.
func (s *Surface) Deactivate() {
	if !s.active && len(s.regions) == 0 {
		return
	}
	for _, r := range s.regions {
		if r.unsub != nil {
			r.unsub()
		}
	}
	s.regions = nil
	s.pressedID = ""
	s.active = false
	logger.Debug("touch: surface deactivated")
}

// Active reports whether the surface dispatches input.
func (s *Surface) Active() bool {
	return s.active
}

// SetDebug toggles the debug tint flag. The surface does not render; the
// owner reads Debug and Regions to draw the tint overlay.
func (s *Surface) SetDebug(v bool) {
	s.debug = v
}

// Debug reports whether regions should be rendered with a visible tint.
func (s *Surface) Debug() bool {
	return s.debug
}

// Track creates a hit region for target, sized and positioned by the
// target's frame and pinned to it. Tracking an id again replaces the
// previous region; the new region takes the top-most spot.
func (s *Surface) Track(id string, target Target, h Handler) {
	s.Forget(id)
	r := &region{id: id, target: target, h: h, bounds: target.Frame()}
	r.unsub = target.OnFrameChange(func() {
		r.bounds = target.Frame()
	})
	s.regions = append(s.regions, r)
	logger.Debug("touch: tracking %q at %+v", id, r.bounds)
}

// Forget destroys the region with the given id, if any.
func (s *Surface) Forget(id string) {
	for i, r := range s.regions {
		if r.id != id {
			continue
		}
		if r.unsub != nil {
			r.unsub()
		}
		s.regions = append(s.regions[:i], s.regions[i+1:]...)
		if s.pressedID == id {
			s.pressedID = ""
		}
		logger.Debug("touch: forgot %q", id)
		return
	}
}

// Regions returns the live regions in z-order, bottom-most first.
func (s *Surface) Regions() []TrackedRegion {
	out := make([]TrackedRegion, 0, len(s.regions))
	for _, r := range s.regions {
		out = append(out, TrackedRegion{ID: r.id, Bounds: r.bounds})
	}
	return out
}

// HandleMouse consumes one mouse message and reports whether a region used
// it. While a region holds a press, motion is swallowed without callbacks.
func (s *Surface) HandleMouse(msg tea.MouseMsg) bool {
	if !s.active {
		return false
	}
	switch m := msg.(type) {
	case tea.MouseClickMsg:
		if m.Button != tea.MouseLeft {
			return false
		}
		p := geometry.Point{X: m.X, Y: m.Y}
		for i := len(s.regions) - 1; i >= 0; i-- {
			r := s.regions[i]
			if !r.bounds.Contains(p) {
				continue
			}
			s.pressedID = r.id
			r.h.OnTouchDown(p)
			return true
		}
		return false
	case tea.MouseMotionMsg:
		return s.pressedID != ""
	case tea.MouseReleaseMsg:
		if s.pressedID == "" {
			return false
		}
		r := s.find(s.pressedID)
		s.pressedID = ""
		if r == nil {
			return true
		}
		p := geometry.Point{X: m.X, Y: m.Y}
		h := r.h
		h.OnTouchUp(p)
		h.OnTap(p)
		return true
	}
	return false
}

func (s *Surface) find(id string) *region {
	for _, r := range s.regions {
		if r.id == id {
			return r
		}
	}
	return nil
}
