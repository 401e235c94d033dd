package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google-admin/hover/internal/ui/modals"
)

// Modal hosts a modals.ModalState and renders it as a centered overlay box.
// The State field is nil when no modal is visible.
type Modal struct {
	State modals.ModalState
	error string

	screenWidth  int
	screenHeight int
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state modals.ModalState) {
	m.State = state
	m.error = ""
	m.propagateSize()
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message shown under the modal content
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// SetScreenSize records the screen dimensions and forwards them to states
// that size their own content.
func (m *Modal) SetScreenSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
	m.propagateSize()
}

func (m *Modal) propagateSize() {
	if m.State == nil || m.screenWidth == 0 {
		return
	}
	if ms, ok := m.State.(modals.ModalWithSize); ok {
		// Content area: frame width minus border and horizontal padding
		contentWidth := m.frameWidth() - BorderSize - 4
		contentHeight := m.screenHeight - BorderSize - 2
		if contentWidth < 1 {
			contentWidth = 1
		}
		if contentHeight < 1 {
			contentHeight = 1
		}
		ms.SetSize(contentWidth, contentHeight)
	}
}

// frameWidth returns the rendered frame width for the current state,
// clamped to the screen.
func (m *Modal) frameWidth() int {
	w := ModalWidth
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		w = pw.PreferredWidth()
	}
	if m.screenWidth > 0 && w > m.screenWidth-2 {
		w = m.screenWidth - 2
	}
	return w
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal box alone, without placing it on the screen.
func (m *Modal) View() string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	// Add error if present
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	return ModalStyle.Width(m.frameWidth()).Render(content)
}

// Layer returns the modal as a centered compositor layer. The second return
// is false when no modal is visible.
func (m *Modal) Layer(screenWidth, screenHeight int) (Layer, bool) {
	if m.State == nil {
		return Layer{}, false
	}

	box := m.View()
	x := (screenWidth - lipgloss.Width(box)) / 2
	y := (screenHeight - lipgloss.Height(box)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return Layer{Content: box, X: x, Y: y, Z: ZModal, Alpha: 1}, true
}
