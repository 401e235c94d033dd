package modals

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SettingsState - theme and behavior settings (huh form)
// =============================================================================

// ThemeOption pairs a persisted theme key with its display label.
type ThemeOption struct {
	Name    string
	Display string
}

type SettingsState struct {
	// Bound form values
	selectedTheme string
	OriginalTheme string // To detect if theme changed

	NotificationsEnabled bool
	IdleCloseEnabled     bool
	DebugRegions         bool

	// MultiSelect bindings
	generalOptions []string

	form *huh.Form

	// Size tracking
	availableWidth int
}

const (
	optionNotifications = "notifications"
	optionIdleClose     = "idle-close"
	optionDebugRegions  = "debug-regions"
)

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return ModalWidth }

// SetSize updates the available width for rendering content.
func (s *SettingsState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *SettingsState) contentWidth() int {
	if s.availableWidth > 0 {
		return s.availableWidth - 10
	}
	return ModalWidth - 10
}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.syncFromMultiSelect()
	return s, cmd
}

// syncFromMultiSelect updates boolean fields from the MultiSelect bindings.
func (s *SettingsState) syncFromMultiSelect() {
	s.NotificationsEnabled = slices.Contains(s.generalOptions, optionNotifications)
	s.IdleCloseEnabled = slices.Contains(s.generalOptions, optionIdleClose)
	s.DebugRegions = slices.Contains(s.generalOptions, optionDebugRegions)
}

// GetSelectedTheme returns the theme key chosen in the select.
func (s *SettingsState) GetSelectedTheme() string { return s.selectedTheme }

// ThemeChanged reports whether the user picked a different theme.
func (s *SettingsState) ThemeChanged() bool { return s.selectedTheme != s.OriginalTheme }

// NewSettingsState creates a new SettingsState with the current settings values.
func NewSettingsState(themes []ThemeOption, currentTheme string,
	notificationsEnabled, idleCloseEnabled, debugRegions bool) *SettingsState {

	s := &SettingsState{
		selectedTheme:        currentTheme,
		OriginalTheme:        currentTheme,
		NotificationsEnabled: notificationsEnabled,
		IdleCloseEnabled:     idleCloseEnabled,
		DebugRegions:         debugRegions,
		availableWidth:       ModalWidth,
	}

	// Build theme options
	themeOptions := make([]huh.Option[string], len(themes))
	for i, t := range themes {
		themeOptions[i] = huh.NewOption(t.Display, t.Name)
	}

	// Build general options MultiSelect
	generalOpts := []huh.Option[string]{
		huh.NewOption("Desktop notification on exit-zone close", optionNotifications).
			Selected(notificationsEnabled),
		huh.NewOption("Close the widget after long idle", optionIdleClose).
			Selected(idleCloseEnabled),
		huh.NewOption("Tint gesture hit-regions", optionDebugRegions).
			Selected(debugRegions),
	}
	// Seed the bound slice to match the Selected markers above.
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}
	if idleCloseEnabled {
		s.generalOptions = append(s.generalOptions, optionIdleClose)
	}
	if debugRegions {
		s.generalOptions = append(s.generalOptions, optionDebugRegions)
	}

	generalGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(generalOpts...).
			Height(len(generalOpts)).
			Value(&s.generalOptions),
	)

	s.form = huh.NewForm(generalGroup).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(s.contentWidth()).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
