// Package modals holds the state types behind the app's modal dialogs. The
// app model stores a single ModalState and type-switches on the concrete
// struct, so each dialog keeps its fields to itself.
package modals

import (
	tea "charm.land/bubbletea/v2"
)

// ModalState is one open dialog. The unexported marker keeps the set of
// implementations closed to this package.
type ModalState interface {
	modalState()
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// ModalWithPreferredWidth lets a dialog ask for a width other than the
// default ModalWidth.
type ModalWithPreferredWidth interface {
	ModalState
	PreferredWidth() int
}

// ModalWithSize is implemented by dialogs that reflow their content to the
// space the app hands them.
type ModalWithSize interface {
	ModalState
	SetSize(width, height int)
}

// HelpShortcut is one key binding row in the help dialog.
type HelpShortcut struct {
	Key  string
	Desc string
}

// HelpSection groups related shortcuts under a heading.
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

// HelpShortcutTriggeredMsg fires when the user picks a shortcut from the
// help dialog; the app replays Key as if the user had typed it.
type HelpShortcutTriggeredMsg struct {
	Key string // e.g. "e", "p", "q"
}
