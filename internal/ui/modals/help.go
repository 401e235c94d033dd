package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// HelpState - filterable keyboard shortcut list (bubbles list)
// =============================================================================

// bindingRow is one key binding in the list. The filter matches on both the
// key and its description.
type bindingRow struct {
	shortcut HelpShortcut
}

func (r bindingRow) FilterValue() string {
	return r.shortcut.Key + " " + r.shortcut.Desc
}

// headingRow is a section heading. It never matches a filter, so filtered
// views show bindings only.
type headingRow struct {
	title string
}

func (r headingRow) FilterValue() string { return "" }

// rowDelegate renders one row per item. The key column width is derived from
// the widest binding at construction so columns line up across sections.
type rowDelegate struct {
	keyWidth int
}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch r := item.(type) {
	case headingRow:
		fmt.Fprint(w, lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			Render(r.title))

	case bindingRow:
		keyStyle := lipgloss.NewStyle().Bold(true).Width(d.keyWidth)
		descStyle := lipgloss.NewStyle()
		cursor := "  "
		if index == m.Index() {
			cursor = "> "
			keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			descStyle = descStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
		} else {
			keyStyle = keyStyle.Foreground(ColorPrimary)
			descStyle = descStyle.Foreground(ColorText)
		}
		fmt.Fprint(w, cursor+keyStyle.Render(r.shortcut.Key)+descStyle.Render(r.shortcut.Desc))
	}
}

// HelpState is the searchable shortcut list.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "up/down: move  /: filter  Enter: trigger  Esc: close"
}

func (s *HelpState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.list.View(),
		ModalHelpStyle.Render(s.Help()))
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize receives the frame from the modal framework. The title and the
// help line each take a row plus a margin row.
func (s *HelpState) SetSize(width, height int) {
	listHeight := height - 4
	if listHeight < 1 {
		listHeight = 1
	}
	s.list.SetSize(width, listHeight)
}

// GetSelectedShortcut returns the currently selected shortcut, or nil when a
// heading is selected or the list is empty.
func (s *HelpState) GetSelectedShortcut() *HelpShortcut {
	if r, ok := s.list.SelectedItem().(bindingRow); ok {
		return &r.shortcut
	}
	return nil
}

// IsFiltering reports whether the filter prompt is active.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpStateFromSections builds the list from already-assembled sections.
// The app layer owns the assembly so the modal stays presentation-only.
func NewHelpStateFromSections(sections []HelpSection) *HelpState {
	var rows []list.Item
	keyWidth := 0
	for _, section := range sections {
		rows = append(rows, headingRow{title: section.Title})
		for _, shortcut := range section.Shortcuts {
			rows = append(rows, bindingRow{shortcut: shortcut})
			if w := lipgloss.Width(shortcut.Key); w > keyWidth {
				keyWidth = w
			}
		}
	}

	l := list.New(rows, rowDelegate{keyWidth: keyWidth + 2}, ModalWidth, HelpModalMaxVisible)

	// The modal chrome draws its own title and help line.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	// Land on the first binding, past the leading heading.
	for i, row := range rows {
		if _, ok := row.(bindingRow); ok {
			l.Select(i)
			break
		}
	}

	return &HelpState{list: l}
}
