package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/google-admin/hover/internal/ui/modals"
)

// Theme defines a complete color palette for the host chrome and the hover
// widget's own surfaces (tab, preview bubble, expanded panel, exit zone).
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (headers, selected strip tab)
	Primary string
	// Secondary is the secondary accent color (footer keys, highlights)
	Secondary string

	// Background colors
	Bg         string // host background
	BgPanel    string // expanded menu panel background
	BgSelected string // selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // primary text
	TextMuted   string // secondary/muted text
	TextInverse string // text on colored backgrounds

	// Semantic colors
	Warning string
	Error   string
	Success string
	Info    string

	// Border colors
	Border      string // default borders
	BorderFocus string // focused element borders (defaults to Primary if empty)

	// Hover widget colors
	Tab        string // collapsed tab background
	TabText    string // tab glyph
	Bubble     string // preview bubble background
	BubbleText string // preview bubble text
	ExitZone   string // exit zone ✕ target
	DebugTint  string // touch hit-region tint background

	// CodeBg is the background for syntax-highlighted snippet content
	CodeBg string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDark  ThemeName = "dark"
	ThemeLight ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDark

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDark: {
		Name:        "Dark",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		BgPanel:     "#111827",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Success:     "#10B981",
		Info:        "#06B6D4",
		Border:      "#374151",
		Tab:         "#7C3AED",
		TabText:     "#F9FAFB",
		Bubble:      "#312E81",
		BubbleText:  "#E0E7FF",
		ExitZone:    "#EF4444",
		DebugTint:   "#B45309",
		CodeBg:      "#161B22",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6366F1",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		BgPanel:     "#F3F4F6",
		BgSelected:  "#E0E7FF",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Success:     "#16A34A",
		Info:        "#0891B2",
		Border:      "#D1D5DB",
		BorderFocus: "#6366F1",
		Tab:         "#6366F1",
		TabText:     "#FFFFFF",
		Bubble:      "#E0E7FF",
		BubbleText:  "#312E81",
		ExitZone:    "#DC2626",
		DebugTint:   "#FCD34D",
		CodeBg:      "#F6F8FA",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeDark, ThemeLight}
}

// GetTheme returns a theme by name, defaulting to Dark if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgPanel = lipgloss.Color(t.BgPanel)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorInfo = lipgloss.Color(t.Info)
	ColorTab = lipgloss.Color(t.Tab)
	ColorTabText = lipgloss.Color(t.TabText)
	ColorBubble = lipgloss.Color(t.Bubble)
	ColorBubbleText = lipgloss.Color(t.BubbleText)
	ColorExitZone = lipgloss.Color(t.ExitZone)
	ColorDebugTint = lipgloss.Color(t.DebugTint)

	// Update header styles
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	// Update footer styles
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Update hover tab styles
	TabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTabText).
		Background(ColorTab).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTabText).
		BorderBackground(ColorTab)

	TabChipStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTabText).
		Background(ColorTab)

	// Update expanded panel styles
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

	// Update preview bubble styles
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

	// Update exit zone styles
	ExitZoneStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorExitZone)

	// Update debug tint style
	DebugTintStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorDebugTint)

	// Update host dashboard styles
	HostCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	HostCardTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	HostTextStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Update modal styles
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

	// Update status styles
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

	syncModalStyles()
}

func init() { syncModalStyles() }

// syncModalStyles pushes the current palette into the modals package, which
// cannot import ui without creating a cycle.
func syncModalStyles() {
	modals.SetStyles(modals.Styles{
		Title:       ModalTitleStyle,
		Help:        ModalHelpStyle,
		StatusError: StatusErrorStyle,

		Primary:     ColorPrimary,
		Secondary:   ColorSecondary,
		Text:        ColorText,
		TextMuted:   ColorTextMuted,
		TextInverse: ColorTextInverse,
		Warning:     ColorWarning,

		InputWidth:     ModalInputWidth,
		InputCharLimit: ModalInputCharLimit,
		ModalWidth:     ModalWidth,
	})
}
