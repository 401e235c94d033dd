package app

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/google-admin/hover/internal/config"
	"github.com/google-admin/hover/internal/hover"
)

func TestTapTabExpands(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)
	x, y := tabCenter(m, 120, 40)

	tap(m, x, y)

	if got := m.hover.StateKind(); got != hover.StateExpanded {
		t.Errorf("Expected tap on tab to expand, got %s", got)
	}
}

func TestTapOutsideCollapses(t *testing.T) {
	m, now := testModelWithSize(t, 120, 40)
	m.hover.Expand()
	settle(m, now)

	tap(m, 110, 5)

	if got := m.hover.StateKind(); got != hover.StateCollapsed {
		t.Errorf("Expected tap outside the panel to collapse, got %s", got)
	}
}

func TestDragTabToRightEdgeRedocks(t *testing.T) {
	m, now := testModelWithSize(t, 120, 40)
	x, y := tabCenter(m, 120, 40)

	m.Update(mouseClick(x, y))
	m.Update(mouseMotion(x+15, y))
	m.Update(mouseMotion(100, 30))
	m.Update(mouseRelease(100, 30))
	settle(m, now)

	mem := m.hover.SaveState()
	if mem.DockSide != 1 {
		t.Errorf("Expected dock on the right edge, got side %d", mem.DockSide)
	}
	if math.Abs(mem.DockPercent-0.75) > 0.01 {
		t.Errorf("Expected dock percent near 0.75, got %v", mem.DockPercent)
	}
	if m.hover.Dragging() {
		t.Error("Expected drag to end on release")
	}
	if got := m.hover.StateKind(); got != hover.StateCollapsed {
		t.Errorf("Expected collapsed after redock, got %s", got)
	}
}

func TestDragToExitZoneCloses(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)
	x, y := tabCenter(m, 120, 40)

	// The exit zone sits centered one row above the bottom edge.
	m.Update(mouseClick(x, y))
	m.Update(mouseMotion(x+15, y))
	m.Update(mouseMotion(59, 37))
	m.Update(mouseRelease(59, 37))

	if got := m.hover.StateKind(); got != hover.StateClosed {
		t.Errorf("Expected exit-zone drop to close the widget, got %s", got)
	}
	if !m.footer.FlashActive() {
		t.Error("Expected a dismissal flash")
	}
	frame := ansi.Strip(m.RenderToString())
	if !strings.Contains(frame, "Menu dismissed") {
		t.Error("Expected dismissal message in footer")
	}
}

func TestPersistedDockSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)

	m := New(cfg, "0.0.0-test")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	now := settle(m, time.Now())
	x, y := tabCenter(m, 120, 40)
	m.Update(mouseClick(x, y))
	m.Update(mouseMotion(x+15, y))
	m.Update(mouseMotion(100, 30))
	m.Update(mouseRelease(100, 30))
	settle(m, now)

	// Same config file, fresh process.
	cfg2, err := config.LoadFrom(cfg.Path())
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	reloaded := New(cfg2, "0.0.0-test")
	mem := reloaded.hover.SaveState()
	if mem.DockSide != 1 {
		t.Errorf("Expected persisted right dock after restart, got side %d", mem.DockSide)
	}
	if math.Abs(mem.DockPercent-0.75) > 0.01 {
		t.Errorf("Expected persisted dock percent near 0.75, got %v", mem.DockPercent)
	}
}

func TestMouseWheelWithoutTargetIsDropped(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)

	_, cmd := m.Update(tea.MouseWheelMsg{X: 60, Y: 20, Button: tea.MouseWheelUp})

	if cmd != nil {
		t.Error("Expected no command for an unclaimed wheel event")
	}
	if got := m.hover.StateKind(); got != hover.StateCollapsed {
		t.Errorf("Expected state unchanged, got %s", got)
	}
}
