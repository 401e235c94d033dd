package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testThemes() []ThemeOption {
	return []ThemeOption{
		{Name: "dark", Display: "Dark"},
		{Name: "light", Display: "Light"},
	}
}

func TestSettingsState_InitialValues(t *testing.T) {
	s := NewSettingsState(testThemes(), "light", true, false, true)

	if s.GetSelectedTheme() != "light" {
		t.Errorf("Expected selected theme light, got %q", s.GetSelectedTheme())
	}
	if s.ThemeChanged() {
		t.Error("Theme should not be reported as changed before any edit")
	}
	if !s.NotificationsEnabled {
		t.Error("NotificationsEnabled should be true initially")
	}
	if s.IdleCloseEnabled {
		t.Error("IdleCloseEnabled should be false initially")
	}
	if !s.DebugRegions {
		t.Error("DebugRegions should be true initially")
	}
}

func TestSettingsState_SyncFromMultiSelect(t *testing.T) {
	s := NewSettingsState(testThemes(), "dark", true, false, false)

	// Simulate the MultiSelect binding changing underneath
	s.generalOptions = []string{optionIdleClose}
	s.syncFromMultiSelect()

	if s.NotificationsEnabled {
		t.Error("NotificationsEnabled should be false after deselection")
	}
	if !s.IdleCloseEnabled {
		t.Error("IdleCloseEnabled should be true after selection")
	}
	if s.DebugRegions {
		t.Error("DebugRegions should stay false")
	}
}

func TestSettingsState_ThemeChanged(t *testing.T) {
	s := NewSettingsState(testThemes(), "dark", false, false, false)

	s.selectedTheme = "light"
	if !s.ThemeChanged() {
		t.Error("ThemeChanged should be true after picking a different theme")
	}

	s.selectedTheme = "dark"
	if s.ThemeChanged() {
		t.Error("ThemeChanged should be false after picking the original theme back")
	}
}

func TestSettingsState_EnterNotConsumedByForm(t *testing.T) {
	s := NewSettingsState(testThemes(), "dark", false, false, false)

	state, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("Enter should not produce a form command; the app layer handles it")
	}
	if state.(*SettingsState).GetSelectedTheme() != "dark" {
		t.Error("Enter should not change form values")
	}
}

func TestSettingsState_Render(t *testing.T) {
	s := NewSettingsState(testThemes(), "dark", true, true, false)
	rendered := s.Render()

	if !strings.Contains(rendered, "Settings") {
		t.Error("Render should include the modal title")
	}
	if !strings.Contains(rendered, "Theme") {
		t.Error("Render should include the theme select")
	}
	if !strings.Contains(rendered, "Options") {
		t.Error("Render should include the options multiselect")
	}
}

func TestSettingsState_HelpText(t *testing.T) {
	s := NewSettingsState(testThemes(), "dark", false, false, false)
	help := s.Help()

	if !strings.Contains(help, "Enter: save") {
		t.Errorf("Help should mention Enter: save, got %q", help)
	}
	if !strings.Contains(help, "Esc: cancel") {
		t.Errorf("Help should mention Esc: cancel, got %q", help)
	}
}

func TestSettingsState_PreferredWidth(t *testing.T) {
	s := NewSettingsState(testThemes(), "dark", false, false, false)
	if s.PreferredWidth() != ModalWidth {
		t.Errorf("Expected preferred width %d, got %d", ModalWidth, s.PreferredWidth())
	}
}
