package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/ui"
)

// ShowFlash puts a transient message in the footer and returns a command
// that wakes the app when it should disappear.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return flashExpiry(ui.DefaultFlashDuration)
}

// Severity shorthands for the common cases.

func (m *Model) ShowFlashError(text string) tea.Cmd   { return m.ShowFlash(text, ui.FlashError) }
func (m *Model) ShowFlashInfo(text string) tea.Cmd    { return m.ShowFlash(text, ui.FlashInfo) }
func (m *Model) ShowFlashSuccess(text string) tea.Cmd { return m.ShowFlash(text, ui.FlashSuccess) }

func flashExpiry(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FlashExpiredMsg(t)
	})
}
