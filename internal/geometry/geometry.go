// Package geometry provides the cell-based coordinate vocabulary shared by
// the drag, touch and hover packages: points, sizes, rectangles, and the
// dock-position math that anchors the floating tab to a screen edge.
package geometry

import "math"

// Point is a screen position in terminal cells. X grows rightward, Y grows
// downward, both from the top-left corner.
type Point struct {
	X int
	Y int
}

// Add returns p translated by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Dist returns the euclidean distance between two points.
func Dist(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectAt builds a Rect from a corner point and a size.
func RectAt(corner Point, size Size) Rect {
	return Rect{X: corner.X, Y: corner.Y, Width: size.Width, Height: size.Height}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Center returns the rectangle's center cell.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// In reports whether r lies entirely within outer.
func (r Rect) In(outer Rect) bool {
	return r.X >= outer.X && r.Y >= outer.Y &&
		r.X+r.Width <= outer.X+outer.Width &&
		r.Y+r.Height <= outer.Y+outer.Height
}

// Inset returns the rectangle shrunk by n cells on every edge.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
}

// Translate returns the rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// CornerForCenter converts a (possibly fractional, mid-animation) center
// position to the integer top-left corner of a box of the given size.
func CornerForCenter(cx, cy float64, size Size) Point {
	return Point{
		X: int(math.Round(cx - float64(size.Width)/2)),
		Y: int(math.Round(cy - float64(size.Height)/2)),
	}
}

// RectForCenter returns the bounding box of a size-sized box centered at the
// given fractional position.
func RectForCenter(cx, cy float64, size Size) Rect {
	return RectAt(CornerForCenter(cx, cy, size), size)
}
