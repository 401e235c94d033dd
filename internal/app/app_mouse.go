package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/logger"
	"github.com/google-admin/hover/internal/notification"
)

// handleMouse gives the widget first claim on every mouse event. The host
// dashboard underneath is static and takes none of its own.
func (m *Model) handleMouse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() {
		// Modals are keyboard-driven; swallow mouse so the widget under
		// them doesn't react.
		return m, nil
	}

	mouseMsg, ok := msg.(tea.MouseMsg)
	if !ok {
		return m, nil
	}

	claimed := m.hover.HandleMouse(mouseMsg)

	var cmds []tea.Cmd
	if m.exitFired {
		m.exitFired = false
		cmds = append(cmds, m.widgetDismissed())
	}
	if claimed {
		if cmd := m.armTick(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// widgetDismissed reacts to an exit-zone drop: flash how to get the menu
// back, and tell the desktop if the user asked for that.
func (m *Model) widgetDismissed() tea.Cmd {
	logger.Log("App: widget dismissed via exit zone")
	if m.config.GetNotificationsEnabled() {
		go notification.WidgetDismissed()
	}
	return m.ShowFlashInfo("Menu dismissed. Press c to bring it back.")
}
