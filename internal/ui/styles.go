package ui

import "charm.land/lipgloss/v2"

// Color palette - dark theme defaults, swapped by regenerateStyles
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted       = lipgloss.Color("#9CA3AF") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple when focused
	ColorBg          = lipgloss.Color("#1F2937") // Host background
	ColorBgPanel     = lipgloss.Color("#111827") // Expanded panel background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorError       = lipgloss.Color("#EF4444") // Red
	ColorSuccess     = lipgloss.Color("#10B981") // Green
	ColorInfo        = lipgloss.Color("#06B6D4") // Cyan
	ColorTab         = lipgloss.Color("#7C3AED") // Collapsed tab background
	ColorTabText     = lipgloss.Color("#F9FAFB") // Tab glyph
	ColorBubble      = lipgloss.Color("#312E81") // Preview bubble background
	ColorBubbleText  = lipgloss.Color("#E0E7FF") // Preview bubble text
	ColorExitZone    = lipgloss.Color("#EF4444") // Exit zone target
	ColorDebugTint   = lipgloss.Color("#B45309") // Touch hit-region tint
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Hover tab styles
var (
	// TabStyle renders the full-size docked tab as a bordered chip.
	TabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTabText).
			Background(ColorTab).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorTabText).
			BorderBackground(ColorTab)

	// TabChipStyle renders the shrunk tab used in the expanded strip.
	TabChipStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTabText).
			Background(ColorTab)
)

// Expanded panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocus).
			BorderBackground(ColorBgPanel).
			Background(ColorBgPanel)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBgPanel).
			Padding(0, 1)

	StripTabStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Background(ColorBgPanel).
			Padding(0, 1)

	StripTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Padding(0, 1)

	PanelContentStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorBgPanel)
)

// Preview bubble styles
var (
	BubbleStyle = lipgloss.NewStyle().
			Foreground(ColorBubbleText).
			Background(ColorBubble).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBubbleText).
			BorderBackground(ColorBubble).
			Padding(0, 1)

	BubbleTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorBubbleText).
				Background(ColorBubble)
)

// Exit zone style
var (
	ExitZoneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorExitZone)
)

// Debug hit-region tint style
var (
	DebugTintStyle = lipgloss.NewStyle().
			Foreground(ColorTextInverse).
			Background(ColorDebugTint)
)

// Host dashboard styles
var (
	HostCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	HostCardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	HostTextStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Modal styles
var (
	// ModalStyle carries an explicit background so the compositor treats the
	// box as opaque rather than letting host content bleed through.
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			BorderBackground(ColorBgPanel).
			Background(ColorBgPanel).
			Padding(1, 2).
			Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1)
)

// Status styles
var (
	FlashStyle = lipgloss.NewStyle().
			Foreground(ColorTextInverse).
			Background(ColorSuccess).
			Padding(0, 1)

	FlashInfoStyle = lipgloss.NewStyle().
			Foreground(ColorTextInverse).
			Background(ColorSecondary).
			Padding(0, 1)

	FlashErrorStyle = lipgloss.NewStyle().
			Foreground(ColorTextInverse).
			Background(ColorError).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)
