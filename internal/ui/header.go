package ui

import (
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"
)

const headerTitle = " hover"

// Header is the top bar: app title on the left, widget status on the right,
// drawn over a gradient that fades the primary color into the background.
type Header struct {
	width    int
	status   string
	dockInfo string
}

func NewHeader() *Header {
	return &Header{}
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStatus sets the right-hand status text, typically the widget state and
// the selected section title.
func (h *Header) SetStatus(status string) {
	h.status = status
}

// SetDockInfo sets the dock summary (side and vertical percent) rendered
// muted in parentheses after the status.
func (h *Header) SetDockInfo(info string) {
	h.dockInfo = info
}

// View renders the bar at the configured width. The dock summary is
// suppressed when there is no status to attach it to.
func (h *Header) View() string {
	right := ""
	if h.status != "" {
		right = h.status
		if h.dockInfo != "" {
			right += " (" + h.dockInfo + ")"
		}
		right += " "
	}

	// Padding is counted in runes; the gradient assigns one cell per rune.
	pad := h.width - utf8.RuneCountInString(headerTitle) - utf8.RuneCountInString(right)
	if pad < 0 {
		pad = 0
	}

	return h.paint(headerTitle + strings.Repeat(" ", pad) + right)
}

// paint lays the gradient under content, bolding the title and muting the
// parenthesized dock summary.
func (h *Header) paint(content string) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	from := lipgloss.Color(theme.Primary)
	to := lipgloss.Color(theme.Bg)
	text := lipgloss.Color(theme.Text)
	muted := lipgloss.Color(theme.TextMuted)

	mutedFrom := -1
	if h.dockInfo != "" {
		mutedFrom = strings.Index(content, "("+h.dockInfo+")")
	}

	runes := []rune(content)
	n := len(runes)
	titleLen := utf8.RuneCountInString(headerTitle)

	var b strings.Builder
	for i, r := range runes {
		// blendColor keeps the full start color at alpha 1, so the fade
		// runs from primary at the left edge toward the background.
		bg := blendColor(from, to, 1-float64(i)/float64(n))

		cell := lipgloss.NewStyle().Background(bg).Bold(i < titleLen)
		if mutedFrom >= 0 && i >= mutedFrom {
			cell = cell.Foreground(muted)
		} else {
			cell = cell.Foreground(text)
		}
		b.WriteString(cell.Render(string(r)))
	}
	return b.String()
}
