package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// The parent ui package pushes its palette down through SetStyles; modals
// cannot import ui without creating a cycle. The metric variables carry
// usable defaults so the package renders sensibly on its own.
var (
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style

	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color

	ModalInputWidth     = 36
	ModalInputCharLimit = 64
	ModalWidth          = 48

	// HelpModalMaxVisible bounds the shortcut list before the app supplies a
	// real height via SetSize.
	HelpModalMaxVisible = 12
)

// Styles is everything the host application hands this package.
type Styles struct {
	Title       lipgloss.Style
	Help        lipgloss.Style
	StatusError lipgloss.Style

	Primary     color.Color
	Secondary   color.Color
	Text        color.Color
	TextMuted   color.Color
	TextInverse color.Color
	Warning     color.Color

	InputWidth     int
	InputCharLimit int
	ModalWidth     int
}

// SetStyles installs the host palette and metrics. Call it before rendering
// any modal, and again whenever the theme changes.
func SetStyles(s Styles) {
	ModalTitleStyle = s.Title
	ModalHelpStyle = s.Help
	StatusErrorStyle = s.StatusError

	ColorPrimary = s.Primary
	ColorSecondary = s.Secondary
	ColorText = s.Text
	ColorTextMuted = s.TextMuted
	ColorTextInverse = s.TextInverse
	ColorWarning = s.Warning

	ModalInputWidth = s.InputWidth
	ModalInputCharLimit = s.InputCharLimit
	ModalWidth = s.ModalWidth
}
