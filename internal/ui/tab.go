package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/google-admin/hover/internal/geometry"
)

// RenderTab draws the floating tab at the given size. A tab large enough
// for a border gets the full rounded chip; smaller sizes (mid appear or
// disappear, or the shrunk strip variant) collapse to a flat chip, and
// anything narrower than the glyph becomes a dot. The caller positions the
// result; alpha is applied by the compositor.
func RenderTab(glyph string, size geometry.Size) string {
	if size.Width <= 0 || size.Height <= 0 {
		return ""
	}
	if size.Width >= 3 && size.Height >= 3 {
		inner := lipgloss.Place(
			size.Width-2, size.Height-2,
			lipgloss.Center, lipgloss.Center,
			normalizeGlyph(glyph, size.Width-2),
		)
		return TabStyle.Render(inner)
	}
	g := normalizeGlyph(glyph, size.Width)
	if size.Width < 3 {
		g = "·"
	}
	return TabChipStyle.Render(lipgloss.Place(
		size.Width, size.Height,
		lipgloss.Center, lipgloss.Center,
		g,
	))
}

// RenderStripChip draws one section slot in the expanded strip. Chips are
// always StripSlotWidth cells wide so slot geometry stays uniform.
func RenderStripChip(glyph string, active bool) string {
	g := normalizeGlyph(glyph, 1)
	if active {
		return StripTabActiveStyle.Render(g)
	}
	return StripTabStyle.Render(g)
}

// normalizeGlyph keeps a glyph within max cells. Truncating a wide rune can
// leave nothing, in which case a bullet stands in.
func normalizeGlyph(glyph string, max int) string {
	if max < 1 {
		max = 1
	}
	g := runewidth.Truncate(strings.TrimSpace(glyph), max, "")
	if g == "" {
		return "•"
	}
	return g
}
