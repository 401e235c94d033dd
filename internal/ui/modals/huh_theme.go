package modals

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/google-admin/hover/internal/keys"
)

// initHuhForm runs the form's Init immediately so the first Render already
// shows focused-field styling.
func initHuhForm(form *huh.Form) {
	form.Init()
}

// huhFormUpdate feeds a message to a huh form, except Enter and Escape. The
// app-layer modal handlers own those two keys.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		if s := key.String(); s == keys.Enter || s == keys.Escape {
			return form, nil
		}
	}
	m, cmd := form.Update(msg)
	return m.(*huh.Form), cmd
}

// ModalTheme builds a huh theme from the modal palette. Forms are created
// fresh each time a modal opens, so a theme switch is picked up by the next
// open.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		fg := func(c color.Color) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(c)
		}
		marker := func(c color.Color, s string) lipgloss.Style {
			return fg(c).SetString(s)
		}

		t := huh.ThemeBase(isDark)

		// The active field carries a left border in the primary color.
		// Blurred is cloned from Focused below with the border hidden.
		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = fg(ColorText).Bold(true)
		t.Focused.Description = fg(ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = marker(ColorWarning, " *")
		t.Focused.ErrorMessage = fg(ColorWarning)

		t.Focused.SelectSelector = marker(ColorPrimary, "> ")
		t.Focused.NextIndicator = marker(ColorPrimary, "→").MarginLeft(1)
		t.Focused.PrevIndicator = marker(ColorPrimary, "←").MarginRight(1)
		t.Focused.Option = fg(ColorText)

		t.Focused.MultiSelectSelector = marker(ColorPrimary, "> ")
		t.Focused.SelectedOption = fg(ColorSecondary)
		t.Focused.SelectedPrefix = marker(ColorSecondary, "[x] ")
		t.Focused.UnselectedOption = fg(ColorText)
		t.Focused.UnselectedPrefix = marker(ColorTextMuted, "[ ] ")

		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextInverse).
			Background(ColorPrimary)
		t.Focused.BlurredButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextMuted)

		t.Focused.TextInput.Cursor = fg(ColorPrimary)
		t.Focused.TextInput.Placeholder = fg(ColorTextMuted)
		t.Focused.TextInput.Prompt = fg(ColorPrimary)
		t.Focused.TextInput.Text = fg(ColorText)

		// Inactive fields keep the palette but hide the border and the
		// select arrows.
		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = fg(ColorSecondary).Bold(true)
		t.Group.Description = fg(ColorTextMuted)

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles

		return t
	})
}
