package geometry

import "testing"

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"top-left corner", Point{2, 3}, true},
		{"interior", Point{4, 4}, true},
		{"bottom-right interior", Point{5, 4}, true},
		{"right edge exclusive", Point{6, 3}, false},
		{"bottom edge exclusive", Point{2, 5}, false},
		{"left of rect", Point{1, 4}, false},
		{"above rect", Point{3, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRect_In(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 80, Height: 24}

	if !(Rect{X: 0, Y: 0, Width: 80, Height: 24}).In(outer) {
		t.Error("rect should be inside itself")
	}
	if !(Rect{X: 10, Y: 5, Width: 20, Height: 10}).In(outer) {
		t.Error("interior rect should be inside")
	}
	if (Rect{X: 70, Y: 0, Width: 11, Height: 5}).In(outer) {
		t.Error("rect overhanging the right edge should not be inside")
	}
	if (Rect{X: -1, Y: 0, Width: 5, Height: 5}).In(outer) {
		t.Error("rect overhanging the left edge should not be inside")
	}
}

func TestRect_Intersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	if !a.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Error("edge-adjacent rects should not intersect")
	}
	if a.Intersects(Rect{X: 3, Y: 3, Width: 0, Height: 4}) {
		t.Error("empty rect should not intersect anything")
	}
}

func TestRect_Inset(t *testing.T) {
	r := Rect{X: 2, Y: 2, Width: 10, Height: 8}.Inset(1)
	want := Rect{X: 3, Y: 3, Width: 8, Height: 6}
	if r != want {
		t.Errorf("Inset(1) = %+v, want %+v", r, want)
	}
}

func TestCornerForCenter(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
		size   Size
		want   Point
	}{
		{"exact center of odd box", 2.5, 1.5, Size{5, 3}, Point{0, 0}},
		{"integer center", 10, 10, Size{5, 3}, Point{8, 9}},
		{"fractional mid-animation", 7.3, 4.8, Size{5, 3}, Point{5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CornerForCenter(tt.cx, tt.cy, tt.size); got != tt.want {
				t.Errorf("CornerForCenter(%v, %v, %v) = %v, want %v", tt.cx, tt.cy, tt.size, got, tt.want)
			}
		})
	}
}

func TestDockCenter_LeftHugsEdge(t *testing.T) {
	screen := Size{Width: 100, Height: 40}
	tab := Size{Width: 5, Height: 3}

	sp := SidePosition{Side: SideLeft, VerticalPercent: 0}
	cx, cy := sp.DockCenter(screen, tab)
	corner := CornerForCenter(cx, cy, tab)
	if corner != (Point{0, 0}) {
		t.Errorf("left dock at vp 0 should sit at origin, got corner %v", corner)
	}
}

func TestDockCenter_RightFlushWithEdge(t *testing.T) {
	screen := Size{Width: 100, Height: 40}
	tab := Size{Width: 5, Height: 3}

	sp := SidePosition{Side: SideRight, VerticalPercent: 1.0}
	cx, cy := sp.DockCenter(screen, tab)
	r := RectForCenter(cx, cy, tab)
	if r.X+r.Width != screen.Width {
		t.Errorf("right dock should be flush with the right edge, box ends at %d", r.X+r.Width)
	}
	if r.Y+r.Height != screen.Height {
		t.Errorf("vp 1.0 should clamp flush with the bottom edge, box ends at %d", r.Y+r.Height)
	}
}

// The docked tab's full bounding box must lie within the screen for every
// side, vertical fraction and screen size.
func TestDockCenter_BoxAlwaysOnScreen(t *testing.T) {
	screens := []Size{
		{Width: 80, Height: 24},
		{Width: 120, Height: 40},
		{Width: 200, Height: 60},
		{Width: 20, Height: 10},
	}
	percents := []float64{-0.5, 0, 0.1, 0.25, 0.5, 0.77, 0.9, 1.0, 1.5}
	tab := Size{Width: 5, Height: 3}

	for _, screen := range screens {
		outer := Rect{X: 0, Y: 0, Width: screen.Width, Height: screen.Height}
		for _, side := range []Side{SideLeft, SideRight} {
			for _, vp := range percents {
				sp := SidePosition{Side: side, VerticalPercent: vp}
				cx, cy := sp.DockCenter(screen, tab)
				box := RectForCenter(cx, cy, tab)
				if !box.In(outer) {
					t.Errorf("dock %v vp=%v screen=%v: box %+v escapes screen", side, vp, screen, box)
				}
			}
		}
	}
}

func TestSidePositionForDrop(t *testing.T) {
	// Screen 100x40, tab height 4 = 10% of screen height.
	screen := Size{Width: 100, Height: 40}
	tab := Size{Width: 5, Height: 4}

	tests := []struct {
		name     string
		drop     Point
		wantSide Side
		wantVP   float64
	}{
		{"drop at 0.8 width, 0.9 height", Point{80, 36}, SideRight, 0.9},
		{"drop left of midline", Point{20, 20}, SideLeft, 0.5},
		{"midline ties to left", Point{50, 8}, SideLeft, 0.2},
		{"bottom drop clamps to 1 - tab fraction", Point{90, 40}, SideRight, 0.9},
		{"top drop clamps to zero", Point{10, -2}, SideLeft, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SidePositionForDrop(tt.drop, screen, tab)
			if got.Side != tt.wantSide {
				t.Errorf("side = %v, want %v", got.Side, tt.wantSide)
			}
			if diff := got.VerticalPercent - tt.wantVP; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("vertical percent = %v, want %v", got.VerticalPercent, tt.wantVP)
			}
		})
	}
}

func TestClampVerticalPercent(t *testing.T) {
	screen := Size{Width: 100, Height: 40}
	tab := Size{Width: 5, Height: 4}

	if got := ClampVerticalPercent(0.5, screen, tab); got != 0.5 {
		t.Errorf("mid value should pass through, got %v", got)
	}
	if got := ClampVerticalPercent(0.95, screen, tab); got != 0.9 {
		t.Errorf("clamp upper bound = %v, want 0.9", got)
	}
	if got := ClampVerticalPercent(-0.1, screen, tab); got != 0 {
		t.Errorf("clamp lower bound = %v, want 0", got)
	}
}

func TestSideFromInt(t *testing.T) {
	if SideFromInt(0) != SideLeft {
		t.Error("0 should map to left")
	}
	if SideFromInt(1) != SideRight {
		t.Error("1 should map to right")
	}
	if SideFromInt(42) != SideLeft {
		t.Error("unknown values should fall back to left")
	}
}

func TestDefaultDock(t *testing.T) {
	d := DefaultDock()
	if d.Side != SideLeft || d.VerticalPercent != 0.5 {
		t.Errorf("default dock = %+v, want left edge at 0.5", d)
	}
}

func TestDist(t *testing.T) {
	if got := Dist(Point{0, 0}, Point{3, 4}); got != 5 {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got := Dist(Point{7, 7}, Point{7, 7}); got != 0 {
		t.Errorf("Dist of equal points = %v, want 0", got)
	}
}
