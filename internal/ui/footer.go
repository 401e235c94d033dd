package ui

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the styling for a transient footer message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashError
)

// DefaultFlashDuration is how long a flash stays visible when no explicit
// duration is given.
const DefaultFlashDuration = 3 * time.Second

type flashMessage struct {
	Text   string
	Type   FlashType
	Expiry time.Time
}

// Footer represents the bottom footer bar. It shows keybinding hints for
// the current widget state, or a transient flash message while one is
// active.
type Footer struct {
	width       int
	state       string // Widget state name: closed, collapsed, expanded, previewed
	modalOpen   bool   // Whether a modal is covering the app
	dragging    bool   // Whether a tab or bubble drag is in flight
	hasSections bool   // Whether the menu has at least one section
	flash       *flashMessage
	now         func() time.Time // Injectable for deterministic tests
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		state: "closed",
		now:   time.Now,
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(state string, modalOpen, dragging, hasSections bool) {
	f.state = state
	f.modalOpen = modalOpen
	f.dragging = dragging
	f.hasSections = hasSections
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash shows a transient message in place of the keybinding hints for
// DefaultFlashDuration.
func (f *Footer) SetFlash(text string, typ FlashType) {
	f.SetFlashWithDuration(text, typ, DefaultFlashDuration)
}

// SetFlashWithDuration shows a transient message with an explicit lifetime.
func (f *Footer) SetFlashWithDuration(text string, typ FlashType, d time.Duration) {
	f.flash = &flashMessage{
		Text:   text,
		Type:   typ,
		Expiry: f.now().Add(d),
	}
}

// ClearFlash drops the flash immediately instead of waiting for expiry.
func (f *Footer) ClearFlash() {
	f.flash = nil
}

// FlashActive reports whether a flash is still within its lifetime.
func (f *Footer) FlashActive() bool {
	return f.flash != nil && f.now().Before(f.flash.Expiry)
}

// View renders the footer
func (f *Footer) View() string {
	if f.FlashActive() {
		style := FlashInfoStyle
		icon := "ℹ"
		switch f.flash.Type {
		case FlashSuccess:
			style = FlashStyle
			icon = "✓"
		case FlashError:
			style = FlashErrorStyle
			icon = "✕"
		}
		return FooterStyle.Width(f.width).Render(style.Render(icon + " " + f.flash.Text))
	}

	var bindings []KeyBinding
	switch {
	case f.modalOpen:
		bindings = []KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "cancel"},
		}
	case f.dragging:
		bindings = []KeyBinding{
			{Key: "release", Desc: "dock"},
			{Key: "exit zone", Desc: "close"},
		}
	case f.state == "collapsed":
		bindings = []KeyBinding{
			{Key: "e", Desc: "expand"},
			{Key: "p", Desc: "preview"},
			{Key: "drag", Desc: "move tab"},
			{Key: "a", Desc: "add section"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	case f.state == "expanded":
		bindings = []KeyBinding{
			{Key: "c", Desc: "collapse"},
			{Key: "y", Desc: "copy"},
			{Key: "a", Desc: "add"},
			{Key: "x", Desc: "remove"},
			{Key: "r", Desc: "rotate"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	case f.state == "previewed":
		bindings = []KeyBinding{
			{Key: "e", Desc: "expand"},
			{Key: "c", Desc: "collapse"},
			{Key: "drag", Desc: "dismiss"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	default:
		bindings = []KeyBinding{
			{Key: "c", Desc: "open widget"},
			{Key: "s", Desc: "settings"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	}

	var parts []string
	for _, b := range bindings {
		// Opening from closed needs at least one section to show
		if b.Key == "c" && b.Desc == "open widget" && !f.hasSections {
			continue
		}
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
