package ui

import (
	"image/color"
	"sort"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// Layer is one pre-rendered block the compositor blends over the host view.
// X and Y are the screen cell of the block's top-left corner; layers may
// hang partly off-screen and are clipped. Higher Z draws later; equal Z
// preserves append order. Alpha below 1 blends the layer's colors toward
// whatever it covers, which is how the widget's idle dimming and preview
// fade are rendered on a cell grid.
type Layer struct {
	Content string
	X, Y    int
	Z       int
	Alpha   float64
}

// Compose renders base into a width×height cell buffer, draws every layer
// over it in z-order, and returns the final frame.
//
// Cells of a layer that carry neither a foreground nor a background are
// treated as transparent, so block corners outside a rounded border do not
// punch holes into the content underneath.
func Compose(base string, width, height int, layers []Layer) string {
	if width <= 0 || height <= 0 {
		return base
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)

	ordered := make([]Layer, len(layers))
	copy(ordered, layers)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Z < ordered[j].Z })

	for _, l := range ordered {
		drawLayer(scr, width, height, l)
	}

	return scr.Render()
}

func drawLayer(scr uv.ScreenBuffer, width, height int, l Layer) {
	if l.Content == "" || l.Alpha <= 0 {
		return
	}
	lw := lipgloss.Width(l.Content)
	lh := lipgloss.Height(l.Content)
	if lw <= 0 || lh <= 0 {
		return
	}

	buf := uv.NewScreenBuffer(lw, lh)
	uv.NewStyledString(l.Content).Draw(buf, uv.Rect(0, 0, lw, lh))

	opaque := l.Alpha >= 1
	for y := 0; y < lh; y++ {
		ty := l.Y + y
		if ty < 0 || ty >= height {
			continue
		}
		for x := 0; x < lw; x++ {
			tx := l.X + x
			if tx < 0 || tx >= width {
				continue
			}
			cell := buf.CellAt(x, y)
			if cell == nil {
				continue
			}
			if cell.Style.Fg == nil && cell.Style.Bg == nil {
				continue
			}
			cell = cell.Clone()
			if !opaque {
				under := scr.CellAt(tx, ty)
				var underBg color.Color = ColorBg
				if under != nil && under.Style.Bg != nil {
					underBg = under.Style.Bg
				}
				cell.Style.Fg = blendColor(cell.Style.Fg, underBg, l.Alpha)
				cell.Style.Bg = blendColor(cell.Style.Bg, underBg, l.Alpha)
			}
			scr.SetCell(tx, ty, cell)
		}
	}
}

// blendColor mixes top over bottom at the given opacity. A nil top keeps
// the bottom color.
func blendColor(top, bottom color.Color, alpha float64) color.Color {
	if top == nil {
		return bottom
	}
	if bottom == nil || alpha >= 1 {
		return top
	}
	if alpha < 0 {
		alpha = 0
	}
	tr, tg, tb, _ := top.RGBA()
	br, bg, bb, _ := bottom.RGBA()
	mix := func(a, b uint32) uint8 {
		return uint8((float64(a)*alpha + float64(b)*(1-alpha)) / 257.0)
	}
	return color.RGBA{
		R: mix(tr, br),
		G: mix(tg, bg),
		B: mix(tb, bb),
		A: 0xFF,
	}
}
