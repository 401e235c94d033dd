package geometry

import "math"

// Side is the screen edge a dock anchors to.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// SideFromInt maps the persisted integer form back to a Side. Unknown
// values fall back to the left edge.
func SideFromInt(v int) Side {
	if v == int(SideRight) {
		return SideRight
	}
	return SideLeft
}

// SidePosition describes a dock: a screen edge plus a vertical position
// expressed as a fraction of screen height. It is resolution independent
// and is what gets persisted; the absolute position is re-derived from it
// on every screen-size change.
type SidePosition struct {
	Side            Side
	VerticalPercent float64
}

// DefaultDock is the first-run dock: left edge, vertically centered.
func DefaultDock() SidePosition {
	return SidePosition{Side: SideLeft, VerticalPercent: 0.5}
}

// DockCenter returns the exact center position for a tab of the given size
// docked on a screen of the given size. The x coordinate hugs the chosen
// edge; the y coordinate is the vertical fraction of screen height, clamped
// so the tab's box never extends past the top or bottom.
func (sp SidePosition) DockCenter(screen, tab Size) (cx, cy float64) {
	w := float64(screen.Width)
	h := float64(screen.Height)
	tw := float64(tab.Width)
	th := float64(tab.Height)

	if sp.Side == SideRight {
		cx = w - tw/2
	} else {
		cx = tw / 2
	}

	maxPercent := 0.0
	if h > 0 {
		maxPercent = 1 - th/h
	}
	if maxPercent < 0 {
		maxPercent = 0
	}
	vp := clampFloat(sp.VerticalPercent, 0, maxPercent)
	cy = vp*h + th/2
	return cx, cy
}

// DockPosition is DockCenter rounded to whole cells.
func (sp SidePosition) DockPosition(screen, tab Size) Point {
	cx, cy := sp.DockCenter(screen, tab)
	return Point{X: int(math.Round(cx)), Y: int(math.Round(cy))}
}

// SidePositionForDrop derives the dock a dropped tab should snap to: the
// nearer screen edge (ties go left) and the drop's vertical fraction,
// clamped for the tab size so the result is persistable as-is.
func SidePositionForDrop(drop Point, screen, tab Size) SidePosition {
	side := SideLeft
	if screen.Width > 0 && float64(drop.X)/float64(screen.Width) > 0.5 {
		side = SideRight
	}
	vp := 0.0
	if screen.Height > 0 {
		vp = float64(drop.Y) / float64(screen.Height)
	}
	return SidePosition{
		Side:            side,
		VerticalPercent: ClampVerticalPercent(vp, screen, tab),
	}
}

// ClampVerticalPercent limits a vertical fraction to [0, 1 - tabH/screenH]
// so a tab docked at the fraction renders fully on-screen.
func ClampVerticalPercent(vp float64, screen, tab Size) float64 {
	maxPercent := 0.0
	if screen.Height > 0 {
		maxPercent = 1 - float64(tab.Height)/float64(screen.Height)
	}
	if maxPercent < 0 {
		maxPercent = 0
	}
	return clampFloat(vp, 0, maxPercent)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
