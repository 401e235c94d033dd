package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/google-admin/hover/internal/config"
	"github.com/google-admin/hover/internal/hover"
	"github.com/google-admin/hover/internal/menu"
)

func TestStateShortcuts(t *testing.T) {
	m, now := testModelWithSize(t, 120, 40)

	m = sendKey(m, "e")
	if got := m.hover.StateKind(); got != hover.StateExpanded {
		t.Fatalf("Expected expanded after e, got %s", got)
	}
	now = settle(m, now)

	m = sendKey(m, "c")
	if got := m.hover.StateKind(); got != hover.StateCollapsed {
		t.Fatalf("Expected collapsed after c, got %s", got)
	}
	now = settle(m, now)

	m = sendKey(m, "p")
	if got := m.hover.StateKind(); got != hover.StatePreviewed {
		t.Fatalf("Expected previewed after p, got %s", got)
	}
	settle(m, now)

	m = sendKey(m, "c")
	if got := m.hover.StateKind(); got != hover.StateCollapsed {
		t.Fatalf("Expected collapsed after second c, got %s", got)
	}
}

func TestExpandRejectedWhileClosed(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)
	m.hover.Close()

	m = sendKey(m, "e")

	if got := m.hover.StateKind(); got != hover.StateClosed {
		t.Errorf("Expected widget to stay closed, got %s", got)
	}
	if !m.footer.FlashActive() {
		t.Error("Expected a flash explaining the rejected transition")
	}
	frame := ansi.Strip(m.RenderToString())
	if !strings.Contains(frame, "cannot transition") {
		t.Errorf("Expected rejection message in footer")
	}
}

func TestCollapseReopensClosedWidget(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)
	m.hover.Close()

	m = sendKey(m, "c")

	if got := m.hover.StateKind(); got != hover.StateCollapsed {
		t.Errorf("Expected c to reopen the widget, got %s", got)
	}
}

func TestRotateSections(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)
	first, _ := m.menu.SectionAt(0)

	m = sendKey(m, "r")

	if m.menu.Len() != 5 {
		t.Fatalf("Expected rotation to keep all sections, got %d", m.menu.Len())
	}
	last, _ := m.menu.SectionAt(4)
	if last.ID != first.ID {
		t.Errorf("Expected former head at the tail, got %q", last.ID)
	}
	if got := string(m.hover.SelectedSection()); got != string(first.ID) {
		t.Errorf("Expected selection to follow the section, got %q", got)
	}
}

func TestRotateRequiresTwoSections(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)
	only, _ := m.menu.SectionAt(0)
	if err := m.menu.SetSections([]menu.Section{only}); err != nil {
		t.Fatalf("SetSections: %v", err)
	}

	_, _, handled := m.ExecuteShortcut("r")
	if handled {
		t.Error("Expected rotate guard to fail with a single section")
	}
}

func TestRemoveSelectedSection(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)

	m = sendKey(m, "x")

	if m.menu.Len() != 4 {
		t.Fatalf("Expected 4 sections after remove, got %d", m.menu.Len())
	}
	if _, ok := m.menu.SectionByID("inbox"); ok {
		t.Error("Expected the selected section to be gone")
	}
	if got := string(m.hover.SelectedSection()); got != "scratch" {
		t.Errorf("Expected selection to fall to the next section, got %q", got)
	}
	if !m.footer.FlashActive() {
		t.Error("Expected a removal flash")
	}
}

func TestRemoveGuardWhenClosed(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)
	m.hover.Close()

	m = sendKey(m, "x")

	if m.menu.Len() != 5 {
		t.Errorf("Expected remove to be guarded while closed, got %d sections", m.menu.Len())
	}
}

func TestRemoveCustomSectionForgetsIt(t *testing.T) {
	cfg := testConfig(t)
	if err := cfg.AddCustomSection(config.CustomSection{ID: "notes-1", Title: "Notes"}); err != nil {
		t.Fatalf("AddCustomSection: %v", err)
	}
	m := New(cfg, "0.0.0-test")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	now := settle(m, time.Now())

	m.hover.RestoreState(hover.Memento{DockSide: 0, DockPercent: 0.5, SelectedSection: "notes-1"})
	settle(m, now)

	m = sendKey(m, "x")

	if _, ok := m.menu.SectionByID("notes-1"); ok {
		t.Error("Expected custom section removed from menu")
	}
	if got := len(cfg.GetCustomSections()); got != 0 {
		t.Errorf("Expected custom section forgotten in config, got %d", got)
	}
}

func TestDebugRegionsToggle(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)

	m = sendKey(m, "D")
	if !m.config.GetDebugRegions() {
		t.Error("Expected debug regions on after first toggle")
	}

	m = sendKey(m, "D")
	if m.config.GetDebugRegions() {
		t.Error("Expected debug regions off after second toggle")
	}
}

func TestCopyWithNothingCopyable(t *testing.T) {
	// The inbox is a list, not text; copying it politely declines.
	m, _ := testModelWithSize(t, 120, 40)

	m = sendKey(m, "y")

	frame := ansi.Strip(m.RenderToString())
	if !strings.Contains(frame, "Nothing to copy") {
		t.Errorf("Expected a nothing-to-copy flash")
	}
}

func TestHelpSectionsReflectGuards(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)

	find := func(sections []string, key string) bool {
		for _, k := range sections {
			if k == key {
				return true
			}
		}
		return false
	}
	collect := func() []string {
		var out []string
		for _, sec := range m.getApplicableHelpSections(append(ShortcutRegistry, helpShortcut), DisplayOnlyShortcuts) {
			for _, sc := range sec.Shortcuts {
				out = append(out, sc.Key)
			}
		}
		return out
	}

	keys := collect()
	for _, want := range []string{"c", "e", "x", "y", "?", "q"} {
		if !find(keys, want) {
			t.Errorf("Expected %q in help while open", want)
		}
	}

	m.hover.Close()
	keys = collect()
	if find(keys, "x") || find(keys, "y") {
		t.Error("Expected selection-bound shortcuts hidden while closed")
	}
	if !find(keys, "c") {
		t.Error("Expected reopen shortcut listed while closed")
	}
}

func TestExecuteShortcutUnknownKey(t *testing.T) {
	m, _ := testModelWithSize(t, 120, 40)
	if _, _, handled := m.ExecuteShortcut("z"); handled {
		t.Error("Expected unknown key to be unhandled")
	}
}
