package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/google-admin/hover/internal/geometry"
)

func TestRenderPreviewBubble(t *testing.T) {
	out := RenderPreviewBubble("Inbox", "3 unread messages", 24)

	if w := lipgloss.Width(out); w != 24 {
		t.Errorf("width = %d, want 24", w)
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Inbox") {
		t.Errorf("title missing:\n%s", plain)
	}
	if !strings.Contains(plain, "3 unread") {
		t.Errorf("body missing:\n%s", plain)
	}
}

func TestRenderPreviewBubbleWrapsBody(t *testing.T) {
	out := RenderPreviewBubble("", strings.Repeat("word ", 20), 20)
	if w := lipgloss.Width(out); w != 20 {
		t.Errorf("width = %d, want 20", w)
	}
	if h := lipgloss.Height(out); h < 4 {
		t.Errorf("long body should wrap onto multiple lines, height = %d", h)
	}
}

func TestRenderExitZone(t *testing.T) {
	out := RenderExitZone(geometry.Size{Width: 5, Height: 3})
	if w, h := lipgloss.Width(out), lipgloss.Height(out); w != 5 || h != 3 {
		t.Errorf("zone size = %dx%d, want 5x3", w, h)
	}
	if !strings.Contains(ansi.Strip(out), "✕") {
		t.Errorf("zone missing ✕ marker")
	}
}

func TestRenderDebugTint(t *testing.T) {
	out := RenderDebugTint("tab", geometry.Size{Width: 8, Height: 2})
	if w, h := lipgloss.Width(out), lipgloss.Height(out); w != 8 || h != 2 {
		t.Errorf("tint size = %dx%d, want 8x2", w, h)
	}
	if !strings.Contains(ansi.Strip(out), "tab") {
		t.Errorf("tint missing region label")
	}
}
