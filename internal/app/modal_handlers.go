package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/config"
	"github.com/google-admin/hover/internal/keys"
	"github.com/google-admin/hover/internal/logger"
	"github.com/google-admin/hover/internal/menu"
	"github.com/google-admin/hover/internal/ui"
	"github.com/google-admin/hover/internal/ui/modals"
)

// handleModalKey routes a key press to the handler for whichever modal is
// open.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *modals.AddSectionState:
		return m.handleAddSectionModal(key, msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While the filter input is live, every key belongs to the list.
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := state.GetSelectedShortcut()
		m.modal.Hide()
		if shortcut == nil {
			return m, nil
		}
		// Display-only entries carry gesture labels, not keys; executing
		// them is a no-op downstream.
		triggered := shortcut.Key
		return m, func() tea.Msg {
			return modals.HelpShortcutTriggeredMsg{Key: triggered}
		}
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		var saveErr error
		keep := func(err error) {
			if saveErr == nil {
				saveErr = err
			}
		}

		keep(m.config.SetNotificationsEnabled(state.NotificationsEnabled))
		keep(m.config.SetIdleCloseEnabled(state.IdleCloseEnabled))
		keep(m.config.SetDebugRegions(state.DebugRegions))
		if state.ThemeChanged() {
			ui.SetThemeByName(state.GetSelectedTheme())
			keep(m.config.SetTheme(state.GetSelectedTheme()))
		}

		if saveErr != nil {
			logger.Error("App: save settings: %v", saveErr)
			m.modal.SetError("Failed to save: " + saveErr.Error())
			return m, nil
		}

		// Debug tint applies live. Idle close is read once at startup, so a
		// change there arrives on the next run.
		m.hover.SetDebug(state.DebugRegions)

		m.modal.Hide()
		return m, m.ShowFlashSuccess("Settings saved")
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleAddSectionModal(key string, msg tea.KeyPressMsg, state *modals.AddSectionState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		title := state.GetTitle()
		if title == "" {
			m.modal.SetError("Title is required")
			return m, nil
		}
		return m.addSection(title, state.GetGlyph(), state.GetBody())
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// addSection appends a user-defined section to the menu and persists it.
func (m *Model) addSection(title, glyph, body string) (tea.Model, tea.Cmd) {
	cs := config.CustomSection{
		ID:    string(menu.NewSectionID()),
		Title: title,
		Glyph: glyph,
		Body:  body,
	}

	sections := append(m.menu.Sections(), customToSection(cs))
	if err := m.menu.SetSections(sections); err != nil {
		m.modal.SetError("Failed to add: " + err.Error())
		return m, nil
	}
	if err := m.config.AddCustomSection(cs); err != nil {
		logger.Error("App: persist custom section: %v", err)
	}

	m.modal.Hide()
	return m, tea.Batch(m.ShowFlashSuccess("Added "+title), m.armTick())
}
