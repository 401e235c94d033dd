package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google-admin/hover/internal/geometry"
	"github.com/google-admin/hover/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current frame as a plain string. The demo
// executor and integration tests capture it directly.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterContext()
	m.updateHeaderContext()

	base := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.host.View(),
		m.footer.View(),
	)

	layers := m.hover.Layers()
	if modalLayer, ok := m.modal.Layer(m.width, m.height); ok {
		layers = append(layers, modalLayer)
	}

	return ui.Compose(base, m.width, m.height, layers)
}

// updateFooterContext updates the footer with current context for
// conditional key hints.
func (m *Model) updateFooterContext() {
	m.footer.SetContext(
		m.hover.StateKind().String(),
		m.modal.IsVisible(),
		m.hover.Dragging(),
		m.menu.Len() > 0,
	)
}

// updateHeaderContext mirrors the widget's state and dock into the header.
func (m *Model) updateHeaderContext() {
	m.header.SetStatus(m.hover.StateKind().String())

	mem := m.hover.SaveState()
	side := geometry.SideFromInt(mem.DockSide)
	m.header.SetDockInfo(fmt.Sprintf("%s %d%%", side, int(mem.DockPercent*100+0.5)))
}

// updateSizes updates component sizes from terminal dimensions. The widget
// gets the full screen; it floats over everything, header and footer
// included.
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.host.SetSize(m.width, m.height-ui.HeaderHeight-ui.FooterHeight)
	m.hover.SetScreenSize(m.width, m.height)
	m.modal.SetScreenSize(m.width, m.height)
}
