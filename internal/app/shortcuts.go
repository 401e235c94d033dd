package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/clipboard"
	"github.com/google-admin/hover/internal/hover"
	"github.com/google-admin/hover/internal/logger"
	"github.com/google-admin/hover/internal/menu"
	"github.com/google-admin/hover/internal/ui"
	"github.com/google-admin/hover/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key              string                              // The key binding (e.g., "e", "ctrl+c")
	DisplayKey       string                              // Display name in help; defaults to Key
	Description      string                              // Human-readable description
	Category         string                              // Section for help modal grouping
	RequiresOpen     bool                                // Widget must not be closed
	RequiresSections bool                                // Menu must have at least one section
	Handler          func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition        func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryWidget   = "Widget"
	CategorySections = "Sections"
	CategoryGeneral  = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryWidget,
	CategorySections,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Widget
	{
		Key:         "c",
		Description: "Open the menu / fold the panel back to the tab",
		Category:    CategoryWidget,
		Handler:     shortcutCollapse,
	},
	{
		Key:              "e",
		Description:      "Expand the section panel",
		Category:         CategoryWidget,
		RequiresSections: true,
		Handler:          shortcutExpand,
	},
	{
		Key:              "p",
		Description:      "Peek at the selected section",
		Category:         CategoryWidget,
		RequiresSections: true,
		Handler:          shortcutPreview,
	},
	{
		Key:         "D",
		Description: "Tint gesture hit-regions",
		Category:    CategoryWidget,
		Handler:     shortcutDebugRegions,
	},

	// Sections
	{
		Key:         "a",
		Description: "Add a section",
		Category:    CategorySections,
		Handler:     shortcutAddSection,
	},
	{
		Key:              "x",
		Description:      "Remove the selected section",
		Category:         CategorySections,
		RequiresOpen:     true,
		RequiresSections: true,
		Handler:          shortcutRemoveSection,
	},
	{
		Key:              "r",
		Description:      "Rotate section order",
		Category:         CategorySections,
		RequiresSections: true,
		Handler:          shortcutRotateSections,
		Condition:        func(m *Model) bool { return m.menu.Len() > 1 },
	},
	{
		Key:              "y",
		Description:      "Copy the selected section's text",
		Category:         CategorySections,
		RequiresOpen:     true,
		RequiresSections: true,
		Handler:          shortcutCopySection,
	},

	// General
	// Note: "?" (help) is handled specially in ExecuteShortcut to avoid init cycle
	{
		Key:         "s",
		Description: "Settings",
		Category:    CategoryGeneral,
		Handler:     shortcutSettings,
	},
	{
		Key:         "q",
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
// These are mouse gestures and per-section bindings.
var DisplayOnlyShortcuts = []Shortcut{
	// Widget (display-only gestures)
	{DisplayKey: "Tap the tab", Description: "Expand the panel", Category: CategoryWidget},
	{DisplayKey: "Drag the tab", Description: "Move the menu; release to dock", Category: CategoryWidget},
	{DisplayKey: "Drop on ✕", Description: "Dismiss the menu", Category: CategoryWidget},
	{DisplayKey: "Tap a chip", Description: "Switch section", Category: CategoryWidget},
	{DisplayKey: "Tap outside", Description: "Fold the panel back to the tab", Category: CategoryWidget},
	{DisplayKey: "Drag the bubble", Description: "Toss the peek away", Category: CategoryWidget},

	// Sections (display-only, handled inside the panel)
	{DisplayKey: "↑/↓ or j/k", Description: "Move through a list", Category: CategorySections},
	{DisplayKey: "←/→", Description: "Cycle snippets", Category: CategorySections},
	{DisplayKey: "Enter", Description: "Open a message / start writing", Category: CategorySections},
	{DisplayKey: "Esc", Description: "Stop writing", Category: CategorySections},
	{DisplayKey: "f", Description: "Toggle log follow", Category: CategorySections},

	// General (display-only)
	{DisplayKey: "ctrl+c", Description: "Quit", Category: CategoryGeneral},
}

// isShortcutApplicable checks if a shortcut is applicable given the current
// model state. This is used to filter which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresOpen && m.hover.StateKind() == hover.StateClosed {
		return false
	}
	if s.RequiresSections && m.menu.Len() == 0 {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// It checks all guards (RequiresOpen, RequiresSections, Condition) before
// executing. Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == "?" {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key == key {
			logger.Log("Shortcut: found %q, checking guards: state=%s, sections=%d", key, m.hover.StateKind(), m.menu.Len())
			if !m.isShortcutApplicable(s) {
				logger.Log("Shortcut: guard failed for %q, letting key propagate", key)
				return m, nil, false // Guard failed, let key propagate to the section
			}
			logger.Log("Shortcut: executing handler for %q", key)
			result, cmd := s.Handler(m)
			return result, cmd, true
		}
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that
// are applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	// Collect shortcuts by category
	categories := make(map[string][]modals.HelpShortcut)

	// Add executable shortcuts that are applicable
	for _, s := range registry {
		if !m.isShortcutApplicable(s) {
			continue
		}
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	// Display-only entries are context for the reader, not executable; show
	// them whenever their category made it into the modal at all.
	for _, s := range displayOnly {
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  s.DisplayKey,
			Desc: s.Description,
		})
	}

	// Build sections in the correct order
	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}

	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutCollapse(m *Model) (tea.Model, tea.Cmd) {
	if err := m.hover.Collapse(); err != nil {
		return m, m.ShowFlashError(err.Error())
	}
	return m, m.armTick()
}

func shortcutExpand(m *Model) (tea.Model, tea.Cmd) {
	if err := m.hover.Expand(); err != nil {
		return m, m.ShowFlashError(err.Error())
	}
	return m, m.armTick()
}

func shortcutPreview(m *Model) (tea.Model, tea.Cmd) {
	if err := m.hover.Preview(); err != nil {
		return m, m.ShowFlashError(err.Error())
	}
	return m, m.armTick()
}

func shortcutDebugRegions(m *Model) (tea.Model, tea.Cmd) {
	enabled := !m.config.GetDebugRegions()
	if err := m.config.SetDebugRegions(enabled); err != nil {
		logger.Error("App: persist debug regions: %v", err)
	}
	m.hover.SetDebug(enabled)
	if enabled {
		return m, m.ShowFlashInfo("Hit-region tint on")
	}
	return m, m.ShowFlashInfo("Hit-region tint off")
}

func shortcutAddSection(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewAddSectionState())
	return m, nil
}

func shortcutRemoveSection(m *Model) (tea.Model, tea.Cmd) {
	id := m.hover.SelectedSection()
	sec, ok := m.menu.SectionByID(id)
	if !ok {
		return m, nil
	}

	idx := m.menu.IndexOf(id)
	sections := m.menu.Sections()
	sections = append(sections[:idx], sections[idx+1:]...)
	if err := m.menu.SetSections(sections); err != nil {
		return m, m.ShowFlashError("Failed to remove section")
	}

	// Forget it in config too, if it was user-added. Built-ins come back on
	// the next run.
	if _, err := m.config.RemoveCustomSection(string(id)); err != nil {
		logger.Error("App: forget custom section: %v", err)
	}

	return m, tea.Batch(m.ShowFlashInfo("Removed "+sec.Content.Title()), m.armTick())
}

func shortcutRotateSections(m *Model) (tea.Model, tea.Cmd) {
	sections := m.menu.Sections()
	rotated := make([]menu.Section, 0, len(sections))
	rotated = append(rotated, sections[1:]...)
	rotated = append(rotated, sections[0])
	if err := m.menu.SetSections(rotated); err != nil {
		return m, m.ShowFlashError("Failed to rotate sections")
	}
	return m, nil
}

func shortcutCopySection(m *Model) (tea.Model, tea.Cmd) {
	text, label := m.copyableText()
	if text == "" {
		return m, m.ShowFlashInfo("Nothing to copy here")
	}
	if err := clipboard.WriteText(text); err != nil {
		logger.Error("App: clipboard write: %v", err)
		return m, m.ShowFlashError("Failed to copy to clipboard")
	}
	return m, m.ShowFlashSuccess("Copied " + label)
}

// copyableText picks the clipboard payload for the selected section.
func (m *Model) copyableText() (text, label string) {
	switch c := m.selectedContent().(type) {
	case *ui.SnippetsContent:
		if snip, ok := c.Current(); ok {
			return snip.Code, snip.Name
		}
	case *ui.ScratchContent:
		return c.Value(), "scratch note"
	case *ui.NoteContent:
		return c.Body(), c.Title()
	}
	return "", ""
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themes := make([]modals.ThemeOption, 0, len(names))
	for _, name := range names {
		themes = append(themes, modals.ThemeOption{
			Name:    string(name),
			Display: ui.GetTheme(name).Name,
		})
	}
	m.modal.Show(modals.NewSettingsState(
		themes,
		string(ui.CurrentThemeName()),
		m.config.GetNotificationsEnabled(),
		m.config.GetIdleCloseEnabled(),
		m.config.GetDebugRegions(),
	))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(ShortcutRegistry, helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpStateFromSections(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
