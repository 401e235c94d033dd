// Package app hosts the demo workspace dashboard the hover widget floats
// over. The model owns the widget, the host content, the footer, and the
// modal stack, and routes input between them.
package app

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/config"
	"github.com/google-admin/hover/internal/hover"
	"github.com/google-admin/hover/internal/logger"
	"github.com/google-admin/hover/internal/menu"
	"github.com/google-admin/hover/internal/ui"
)

// frameInterval paces the animation tick loop, roughly 30fps.
const frameInterval = 33 * time.Millisecond

// idleCloseAfter is how long the collapsed tab sits untouched before the
// widget closes itself, when the setting is on.
const idleCloseAfter = 30 * time.Second

// The widget's preview-drag distances default to values sized for
// fine-grained pointer surfaces. Terminal cells are far coarser, so the app
// passes cell-scale overrides: the bubble fades over a third of a typical
// screen and dismisses after a quarter of one.
const (
	previewFadeDistance  = 32
	previewCloseDistance = 24
)

// FrameTickMsg advances the widget's animations.
type FrameTickMsg time.Time

// FlashExpiredMsg wakes the update loop so an expired flash disappears
// without waiting for other input.
type FlashExpiredMsg time.Time

// Model is the main Bubble Tea model.
type Model struct {
	config  *config.Config
	version string

	header *ui.Header
	footer *ui.Footer
	host   *ui.Host
	modal  *ui.Modal

	hover *hover.View
	menu  *menu.Menu

	// Built-in section contents, kept as fields so handlers can reach
	// them without type-switching through the menu.
	inbox    *ui.InboxContent
	scratch  *ui.ScratchContent
	snippets *ui.SnippetsContent

	width  int
	height int

	// ticking marks an armed frame tick loop so Update never stacks a
	// second one.
	ticking bool

	// exitFired is set by the exit subscription during HandleMouse and
	// drained by the surrounding handler.
	exitFired bool
	exitSub   *hover.Sub
}

// New creates a new app model.
func New(cfg *config.Config, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:  cfg,
		version: version,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		host:    ui.NewHost(),
		modal:   ui.NewModal(),
	}

	opts := hover.Options{
		FadeDistance:  previewFadeDistance,
		CloseDistance: previewCloseDistance,
	}
	if cfg.GetIdleCloseEnabled() {
		opts.IdleCloseAfter = idleCloseAfter
	}
	m.hover = hover.New(cfg, opts)
	m.hover.SetDebug(cfg.GetDebugRegions())
	m.exitSub = m.hover.OnExit(func() { m.exitFired = true })

	m.menu = m.buildMenu()
	m.hover.SetMenu(m.menu)

	return m
}

// buildMenu assembles the built-in sections plus any custom sections the
// user added in earlier runs.
func (m *Model) buildMenu() *menu.Menu {
	m.inbox = ui.NewInboxContent(
		ui.InboxMessage{From: "mira", Subject: "standup moved to 9:30", Unread: true},
		ui.InboxMessage{From: "sam", Subject: "review the deploy checklist?", Unread: true},
		ui.InboxMessage{From: "bot", Subject: "nightly build green", Unread: false},
	)
	m.scratch = ui.NewScratchContent("")
	m.snippets = ui.NewSnippetsContent(
		ui.Snippet{
			Name:     "hello.go",
			Language: "go",
			Code:     "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}",
		},
		ui.Snippet{
			Name:     "query.sql",
			Language: "sql",
			Code:     "SELECT id, title\nFROM tasks\nWHERE done = false\nORDER BY due_date;",
		},
	)

	builtin := []menu.Section{
		{
			ID:      "inbox",
			Tab:     menu.TabDescriptor{Glyph: "✉", Label: "Inbox"},
			Content: m.inbox,
			Preview: &menu.Preview{
				Title: "Inbox",
				Body:  fmt.Sprintf("%d unread", m.inbox.UnreadCount()),
			},
		},
		{
			ID:      "scratch",
			Tab:     menu.TabDescriptor{Glyph: "✎", Label: "Scratch"},
			Content: m.scratch,
			Preview: &menu.Preview{Title: "Scratch", Body: "quick notes"},
		},
		{
			ID:      "snippets",
			Tab:     menu.TabDescriptor{Glyph: "❖", Label: "Snippets"},
			Content: m.snippets,
			Preview: &menu.Preview{Title: "Snippets", Body: "code to paste"},
		},
		{
			ID:      "about",
			Tab:     menu.TabDescriptor{Glyph: "?", Label: "About"},
			Content: ui.NewAboutContent(),
		},
		{
			ID:      "logs",
			Tab:     menu.TabDescriptor{Glyph: "☰", Label: "Logs"},
			Content: ui.NewLogsContent(logger.DefaultLogPath),
		},
	}

	sections := append([]menu.Section(nil), builtin...)
	for _, cs := range m.config.GetCustomSections() {
		sections = append(sections, customToSection(cs))
	}

	mn, err := menu.New(sections...)
	if err != nil {
		// A corrupt config can carry a custom section whose ID collides
		// with a built-in. Drop the customs rather than refuse to start.
		logger.Warn("App: invalid persisted sections, using built-ins: %v", err)
		mn, _ = menu.New(builtin...)
	}
	return mn
}

// customToSection turns a persisted custom section back into a live one.
func customToSection(cs config.CustomSection) menu.Section {
	glyph := cs.Glyph
	if glyph == "" {
		glyph = deriveGlyph(cs.Title)
	}
	sec := menu.Section{
		ID:      menu.SectionID(cs.ID),
		Tab:     menu.TabDescriptor{Glyph: glyph, Label: cs.Title},
		Content: ui.NewNoteContent(cs.Title, cs.Body),
	}
	if first := firstLine(cs.Body); first != "" {
		sec.Preview = &menu.Preview{Title: cs.Title, Body: first}
	}
	return sec
}

// deriveGlyph picks a tab glyph for a section that didn't get one: the
// first rune of its title, uppercased.
func deriveGlyph(title string) string {
	for _, r := range strings.TrimSpace(title) {
		return strings.ToUpper(string(r))
	}
	return "•"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Hover exposes the widget for integration tests and the demo executor.
func (m *Model) Hover() *hover.View {
	return m.hover
}

// selectedContent returns the content of the currently selected section,
// nil when the menu is empty.
func (m *Model) selectedContent() menu.Content {
	sec, ok := m.menu.SectionByID(m.hover.SelectedSection())
	if !ok {
		return nil
	}
	return sec.Content
}

// selectedInput returns the selected section's content when it accepts
// keyboard input.
func (m *Model) selectedInput() ui.SectionInput {
	if in, ok := m.selectedContent().(ui.SectionInput); ok {
		return in
	}
	return nil
}

// frameTick schedules the next animation frame.
func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}

// armTick starts the frame tick loop if the widget has animations in
// flight and no loop is already running.
func (m *Model) armTick() tea.Cmd {
	if m.ticking || !m.hover.Animating() {
		return nil
	}
	m.ticking = true
	return frameTick()
}
