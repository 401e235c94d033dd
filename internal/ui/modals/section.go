package modals

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"
)

// =============================================================================
// AddSectionState - State for the Add Section form modal
// =============================================================================

// glyphCharLimit leaves room for an emoji plus a variation selector.
const glyphCharLimit = 2

// validateGlyph accepts an empty glyph or exactly one on-screen character.
// Counted in grapheme clusters, not runes: an emoji with a variation
// selector is still one glyph.
func validateGlyph(s string) error {
	if uniseg.GraphemeClusterCount(strings.TrimSpace(s)) > 1 {
		return fmt.Errorf("enter a single character")
	}
	return nil
}

type AddSectionState struct {
	// Bound form values
	title string
	glyph string
	body  string

	form *huh.Form

	// Size tracking
	availableWidth int
}

func (*AddSectionState) modalState() {}

func (s *AddSectionState) Title() string { return "Add Section" }

func (s *AddSectionState) Help() string {
	return "Tab: next field  Enter: add  Esc: cancel"
}

func (s *AddSectionState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *AddSectionState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// SetSize updates the available width for rendering content.
func (s *AddSectionState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *AddSectionState) contentWidth() int {
	if s.availableWidth > 0 {
		return s.availableWidth - 10
	}
	return ModalWidth - 10
}

// GetTitle returns the section title with surrounding whitespace removed.
// An empty result means the form is incomplete; the app keeps the modal open.
func (s *AddSectionState) GetTitle() string { return strings.TrimSpace(s.title) }

// GetGlyph returns the tab glyph. Empty means the tab derives one from the title.
func (s *AddSectionState) GetGlyph() string { return strings.TrimSpace(s.glyph) }

// GetBody returns the body text shown in the expanded panel.
func (s *AddSectionState) GetBody() string { return strings.TrimSpace(s.body) }

// NewAddSectionState creates the add-section form with empty fields.
func NewAddSectionState() *AddSectionState {
	s := &AddSectionState{availableWidth: ModalWidth}

	group := huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Description("Shown in the expanded menu and the preview bubble").
			Placeholder("e.g., Reminders").
			CharLimit(ModalInputCharLimit).
			Value(&s.title),
		huh.NewInput().
			Title("Tab glyph").
			Description("Single character for the collapsed tab (optional)").
			Placeholder("✶").
			CharLimit(glyphCharLimit).
			Validate(validateGlyph).
			Value(&s.glyph),
		huh.NewInput().
			Title("Body").
			Description("Text for the section panel (optional)").
			CharLimit(ModalInputCharLimit).
			Value(&s.body),
	)

	s.form = huh.NewForm(group).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(s.contentWidth()).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
