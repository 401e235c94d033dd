package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/hover"
	"github.com/google-admin/hover/internal/keys"
	"github.com/google-admin/hover/internal/logger"
	"github.com/google-admin/hover/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function
// that routes input between the modal stack, the widget, and the host.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		// The first real size flushes any deferred open, which can start
		// the appear animation.
		return m, m.armTick()

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m.handleMouse(msg)

	case FrameTickMsg:
		return m.handleFrameTick(msg)

	case FlashExpiredMsg:
		// Rendering is enough; the footer hides expired flashes itself.
		return m, nil

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)
	}

	// Remaining messages (huh form internals and the like) go to the
	// modal when one is open.
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	return m, nil
}

// handleKeyPress routes keys: modal first, then a focused editor, then the
// shortcut registry, and finally the selected section's own bindings.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ctrl+c always quits, even mid-edit.
	if key == keys.CtrlC {
		return m.quit()
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// A focused editor (the scratch textarea) owns the keyboard until it
	// gives it back via esc.
	if m.hover.StateKind() == hover.StateExpanded {
		if in := m.selectedInput(); in != nil && in.Editing() {
			in.HandleKey(msg)
			return m, nil
		}
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	// Unclaimed keys reach the selected section while the panel is open.
	if m.hover.StateKind() == hover.StateExpanded {
		if in := m.selectedInput(); in != nil {
			in.HandleKey(msg)
		}
	}

	return m, nil
}

// handleFrameTick advances animations and keeps the loop alive while any
// are still running.
func (m *Model) handleFrameTick(msg FrameTickMsg) (tea.Model, tea.Cmd) {
	if m.hover.Step(time.Time(msg)) {
		return m, frameTick()
	}
	m.ticking = false
	return m, nil
}

// handleHelpShortcutTrigger executes a shortcut the user picked from the
// help modal.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	logger.Log("App: executing %q from help modal", key)
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	logger.Log("App: quitting")
	return m, tea.Quit
}
