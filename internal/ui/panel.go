package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/google-admin/hover/internal/geometry"
)

// Strip geometry inside the expanded panel. Slots sit on the first row
// inside the border; the shrunk tab animates onto the selected slot, so hit
// regions, move targets and rendering must all agree on these offsets.
const (
	StripSlotWidth = 3
	StripSlotGap   = 1
	StripRowOffset = 1
	StripColOffset = 2
)

// StripSlotRect returns the screen rectangle of slot i for a panel drawn at
// frame.
func StripSlotRect(frame geometry.Rect, i int) geometry.Rect {
	return geometry.Rect{
		X:      frame.X + StripColOffset + i*(StripSlotWidth+StripSlotGap),
		Y:      frame.Y + StripRowOffset,
		Width:  StripSlotWidth,
		Height: 1,
	}
}

// StripSlotCenter returns the center of slot i, the move target for the
// shrunk tab.
func StripSlotCenter(frame geometry.Rect, i int) geometry.Point {
	return StripSlotRect(frame, i).Center()
}

// RenderExpandedPanel draws the expanded menu: a strip of per-section chips
// across the top, the selected section's title, and its content below.
// glyphs are the strip chips in section order; body is the selected
// section's pre-sized view.
func RenderExpandedPanel(glyphs []string, selected int, title, body string, size geometry.Size) string {
	if size.Width < 4 || size.Height < 4 {
		return ""
	}
	innerWidth := size.Width - 2
	innerHeight := size.Height - 2

	var strip strings.Builder
	strip.WriteString(" ")
	for i, g := range glyphs {
		if i > 0 {
			strip.WriteString(strings.Repeat(" ", StripSlotGap))
		}
		strip.WriteString(RenderStripChip(g, i == selected))
	}

	lines := []string{strip.String()}
	if title != "" {
		lines = append(lines, PanelTitleStyle.Render(title))
	}
	if body != "" {
		lines = append(lines, strings.Split(body, "\n")...)
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, innerWidth, "")
	}

	placed := lipgloss.Place(
		innerWidth, innerHeight,
		lipgloss.Left, lipgloss.Top,
		strings.Join(lines, "\n"),
	)
	return PanelStyle.Render(placed)
}
