package ui

import (
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/google-admin/hover/internal/geometry"
)

// RenderExitZone draws the drop target shown near the bottom edge while a
// tab drag is in flight.
func RenderExitZone(size geometry.Size) string {
	return ExitZoneStyle.Render(lipgloss.Place(
		size.Width, size.Height,
		lipgloss.Center, lipgloss.Center,
		"✕",
	))
}

// RenderDebugTint fills a hit region with a labeled tint so debug mode can
// show where touch overlays sit.
func RenderDebugTint(id string, size geometry.Size) string {
	label := runewidth.Truncate(id, size.Width, "")
	return DebugTintStyle.Render(lipgloss.Place(
		size.Width, size.Height,
		lipgloss.Left, lipgloss.Top,
		label,
	))
}
