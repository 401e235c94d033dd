package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Host renders the dashboard the widget floats over. The content is static
// so demo recordings stay deterministic; it exists to give the compositor
// something recognizable to blend layers against.
type Host struct {
	width  int
	height int
}

// NewHost creates the host dashboard
func NewHost() *Host {
	return &Host{}
}

// SetSize sets the dashboard dimensions
func (h *Host) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the dashboard centered in the host region
func (h *Host) View() string {
	if h.width <= 0 || h.height <= 0 {
		return ""
	}

	cardWidth := (h.width - 8) / 2
	if cardWidth > 36 {
		cardWidth = 36
	}
	if cardWidth < 16 {
		// Too narrow for two columns, stack a single card
		return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, h.todayCard(h.width-4))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		h.todayCard(cardWidth),
		"  ",
		h.activityCard(cardWidth),
	)

	hint := HostCardTitleStyle.Render("✶ ") +
		HostTextStyle.Render("The tab at the screen edge is the hover menu. Drag it, tap it.")

	content := lipgloss.JoinVertical(lipgloss.Center, row, "", hint)
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, content)
}

func (h *Host) todayCard(width int) string {
	lines := []string{
		HostCardTitleStyle.Render("Today"),
		"",
		"✓ Standup notes posted",
		"◇ Review deploy checklist",
		"◇ Reply to the audit thread",
	}
	return HostCardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (h *Host) activityCard(width int) string {
	lines := []string{
		HostCardTitleStyle.Render("Activity"),
		"",
		HostTextStyle.Render("09:12  build green"),
		HostTextStyle.Render("10:48  3 new replies"),
		HostTextStyle.Render("11:02  staging deployed"),
	}
	return HostCardStyle.Width(width).Render(strings.Join(lines, "\n"))
}
