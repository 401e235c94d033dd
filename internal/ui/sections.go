package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/google-admin/hover/internal/keys"
)

// SectionInput is implemented by section contents that respond to key
// presses while the panel is expanded. HandleKey returns true when the key
// was consumed so the host skips its own bindings. Editing reports whether
// the content is in a text-entry mode where the host should route every
// key to it before its own bindings.
type SectionInput interface {
	HandleKey(msg tea.KeyPressMsg) bool
	Editing() bool
}

// =============================================================================
// Inbox - message list section
// =============================================================================

// InboxMessage is one entry in the inbox section.
type InboxMessage struct {
	From    string
	Subject string
	Unread  bool
}

type inboxItem struct {
	msg InboxMessage
}

func (i inboxItem) FilterValue() string {
	return i.msg.From + " " + i.msg.Subject
}

// inboxFromColumnWidth fits the sender names in the demo data set.
const inboxFromColumnWidth = 10

type inboxDelegate struct{}

func (d inboxDelegate) Height() int                             { return 1 }
func (d inboxDelegate) Spacing() int                            { return 0 }
func (d inboxDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d inboxDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(inboxItem)
	if !ok {
		return
	}

	dot := lipgloss.NewStyle().Foreground(ColorTextMuted).Render("○")
	if i.msg.Unread {
		dot = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render("●")
	}

	if index == m.Index() {
		from := lipgloss.NewStyle().
			Foreground(ColorTextInverse).
			Background(ColorPrimary).
			Bold(true).
			Width(inboxFromColumnWidth).
			Render(i.msg.From)
		subject := lipgloss.NewStyle().
			Foreground(ColorTextInverse).
			Background(ColorPrimary).
			Render(i.msg.Subject)
		fmt.Fprint(w, "> "+dot+" "+from+subject)
		return
	}

	from := lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(i.msg.Unread).
		Width(inboxFromColumnWidth).
		Render(i.msg.From)
	subject := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render(i.msg.Subject)
	fmt.Fprint(w, "  "+dot+" "+from+subject)
}

// InboxContent is the inbox section: a navigable message list. Enter marks
// the selected message read.
type InboxContent struct {
	list     list.Model
	messages []InboxMessage
}

// NewInboxContent creates the inbox section with seed messages.
func NewInboxContent(messages ...InboxMessage) *InboxContent {
	l := list.New(buildInboxItems(messages), inboxDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(false)

	return &InboxContent{list: l, messages: messages}
}

func buildInboxItems(messages []InboxMessage) []list.Item {
	items := make([]list.Item, 0, len(messages))
	for _, m := range messages {
		items = append(items, inboxItem{msg: m})
	}
	return items
}

// Title implements menu.Content.
func (c *InboxContent) Title() string { return "Inbox" }

// View implements menu.Content.
func (c *InboxContent) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.messages) == 0 {
		return lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No messages.")
	}
	c.list.SetSize(width, height)
	return c.list.View()
}

// UnreadCount returns the number of unread messages for the preview bubble.
func (c *InboxContent) UnreadCount() int {
	n := 0
	for _, m := range c.messages {
		if m.Unread {
			n++
		}
	}
	return n
}

// HandleKey implements SectionInput. Navigation moves the cursor, enter
// marks the selected message read.
func (c *InboxContent) HandleKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case keys.Up, keys.Down, keys.PgUp, keys.PgDown, "k", "j":
		c.list, _ = c.list.Update(msg)
		return true
	case keys.Enter:
		idx := c.list.Index()
		if idx >= 0 && idx < len(c.messages) && c.messages[idx].Unread {
			c.messages[idx].Unread = false
			c.list.SetItems(buildInboxItems(c.messages))
		}
		return true
	}
	return false
}

// Editing implements SectionInput.
func (c *InboxContent) Editing() bool { return false }

// =============================================================================
// Scratch - textarea section
// =============================================================================

// ScratchContent is a free-form note pad. Enter starts editing, escape
// stops; while editing every key goes to the textarea.
type ScratchContent struct {
	input textarea.Model
}

// NewScratchContent creates the scratch section with optional initial text.
func NewScratchContent(initial string) *ScratchContent {
	ti := textarea.New()
	ti.Placeholder = "Press enter to start writing..."
	ti.CharLimit = 0
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	applyScratchStyles(&ti)
	if initial != "" {
		ti.SetValue(initial)
	}
	return &ScratchContent{input: ti}
}

// applyScratchStyles strips the textarea backgrounds so the panel
// background shows through.
func applyScratchStyles(ta *textarea.Model) {
	taStyles := ta.Styles()

	baseStyle := lipgloss.NewStyle()
	textStyle := lipgloss.NewStyle().Foreground(ColorText)
	placeholderStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)

	taStyles.Focused.Base = baseStyle
	taStyles.Focused.Text = textStyle
	taStyles.Focused.Placeholder = placeholderStyle
	taStyles.Focused.CursorLine = textStyle
	taStyles.Focused.Prompt = textStyle

	taStyles.Blurred.Base = baseStyle
	taStyles.Blurred.Text = textStyle
	taStyles.Blurred.Placeholder = placeholderStyle
	taStyles.Blurred.CursorLine = textStyle
	taStyles.Blurred.Prompt = textStyle

	ta.SetStyles(taStyles)
}

// Title implements menu.Content.
func (c *ScratchContent) Title() string { return "Scratch" }

// View implements menu.Content.
func (c *ScratchContent) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c.input.SetWidth(width)
	c.input.SetHeight(height)
	return c.input.View()
}

// Value returns the current note text.
func (c *ScratchContent) Value() string {
	return c.input.Value()
}

// SetValue replaces the note text.
func (c *ScratchContent) SetValue(s string) {
	c.input.SetValue(s)
}

// HandleKey implements SectionInput.
func (c *ScratchContent) HandleKey(msg tea.KeyPressMsg) bool {
	if !c.input.Focused() {
		if msg.String() == keys.Enter {
			c.input.Focus()
			return true
		}
		return false
	}
	if msg.String() == keys.Escape {
		c.input.Blur()
		return true
	}
	c.input, _ = c.input.Update(msg)
	return true
}

// Editing implements SectionInput.
func (c *ScratchContent) Editing() bool { return c.input.Focused() }

// =============================================================================
// Snippets - syntax-highlighted code section
// =============================================================================

// Snippet is one named code block in the snippets section.
type Snippet struct {
	Name     string
	Language string
	Code     string
}

// SnippetsContent cycles through code snippets with chroma highlighting.
type SnippetsContent struct {
	snippets    []Snippet
	index       int
	highlighted []string // lazily built per snippet
}

// NewSnippetsContent creates the snippets section.
func NewSnippetsContent(snippets ...Snippet) *SnippetsContent {
	return &SnippetsContent{
		snippets:    snippets,
		highlighted: make([]string, len(snippets)),
	}
}

// Title implements menu.Content.
func (c *SnippetsContent) Title() string { return "Snippets" }

// View implements menu.Content.
func (c *SnippetsContent) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.snippets) == 0 {
		return lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No snippets.")
	}

	nav := c.renderNavBar(width)
	lines := strings.Split(c.highlightedCode(c.index), "\n")
	if len(lines) > height-1 {
		lines = lines[:height-1]
	}
	return nav + "\n" + strings.Join(lines, "\n")
}

// renderNavBar renders the compact "← name (2 of 3) →" line.
func (c *SnippetsContent) renderNavBar(width int) string {
	current := c.snippets[c.index]

	leftArrow := "  "
	if c.index > 0 {
		leftArrow = "← "
	}
	rightArrow := "  "
	if c.index < len(c.snippets)-1 {
		rightArrow = " →"
	}

	arrowStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	counterStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	counter := counterStyle.Render(fmt.Sprintf("(%d of %d)", c.index+1, len(c.snippets)))

	nav := arrowStyle.Render(leftArrow) +
		nameStyle.Render(current.Name) + " " +
		counter +
		arrowStyle.Render(rightArrow)

	return lipgloss.NewStyle().Width(width).Render(nav)
}

// Index returns the currently shown snippet index.
func (c *SnippetsContent) Index() int { return c.index }

// Current returns the snippet on display, for the copy binding.
func (c *SnippetsContent) Current() (Snippet, bool) {
	if len(c.snippets) == 0 {
		return Snippet{}, false
	}
	return c.snippets[c.index], true
}

// HandleKey implements SectionInput. Left and right cycle snippets.
func (c *SnippetsContent) HandleKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case keys.Left:
		if c.index > 0 {
			c.index--
		}
		return true
	case keys.Right:
		if c.index < len(c.snippets)-1 {
			c.index++
		}
		return true
	}
	return false
}

// Editing implements SectionInput.
func (c *SnippetsContent) Editing() bool { return false }

func (c *SnippetsContent) highlightedCode(i int) string {
	if c.highlighted[i] == "" {
		c.highlighted[i] = highlightCode(c.snippets[i].Code, c.snippets[i].Language)
	}
	return c.highlighted[i]
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// =============================================================================
// About - scrollable gesture guide
// =============================================================================

// AboutContent is the built-in guide to the widget's gestures and keys.
type AboutContent struct {
	view viewport.Model
}

// NewAboutContent creates the about section.
func NewAboutContent() *AboutContent {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	vp.SoftWrap = true
	vp.SetContent(aboutText())
	return &AboutContent{view: vp}
}

func aboutText() string {
	heading := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	key := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	var b strings.Builder
	b.WriteString("hover is a floating menu that lives at the edge of the screen.\n\n")

	b.WriteString(heading.Render("Gestures") + "\n")
	gestures := [][2]string{
		{"tap the tab", "expand the menu"},
		{"drag the tab", "move it; release to dock at the nearest edge"},
		{"drop on the ✕", "close the widget"},
		{"tap a strip chip", "switch sections"},
		{"tap outside", "collapse back to the tab"},
		{"drag the bubble", "past the tear-off distance to dismiss it"},
	}
	for _, g := range gestures {
		b.WriteString("  " + key.Render(fmt.Sprintf("%-18s", g[0])) + g[1] + "\n")
	}

	b.WriteString("\n" + heading.Render("Keys") + "\n")
	bindings := [][2]string{
		{"p", "preview"},
		{"e", "expand"},
		{"c", "collapse"},
		{"a", "add section"},
		{"x", "remove section"},
		{"r", "rotate sections"},
		{"?", "all shortcuts"},
	}
	for _, kb := range bindings {
		b.WriteString("  " + key.Render(fmt.Sprintf("%-4s", kb[0])) + kb[1] + "\n")
	}

	b.WriteString("\nThe tab dims after a few seconds of inactivity and wakes on touch.\n")
	b.WriteString("Dock position and the selected section persist across restarts.")
	return b.String()
}

// Title implements menu.Content.
func (c *AboutContent) Title() string { return "About" }

// View implements menu.Content.
func (c *AboutContent) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c.view.SetWidth(width)
	c.view.SetHeight(height)
	return c.view.View()
}

// HandleKey implements SectionInput.
func (c *AboutContent) HandleKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case keys.Up, keys.Down, keys.PgUp, keys.PgDown:
		c.view, _ = c.view.Update(msg)
		return true
	}
	return false
}

// Editing implements SectionInput.
func (c *AboutContent) Editing() bool { return false }

// =============================================================================
// Note - fixed text for user-added sections
// =============================================================================

// NoteContent shows a fixed block of text. Sections added through the
// add-section form are backed by it.
type NoteContent struct {
	title string
	body  string
	view  viewport.Model
}

// NewNoteContent creates a note section with the given title and body.
func NewNoteContent(title, body string) *NoteContent {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	vp.SoftWrap = true
	if body == "" {
		vp.SetContent(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("Nothing here yet."))
	} else {
		vp.SetContent(body)
	}
	return &NoteContent{title: title, body: body, view: vp}
}

// Title implements menu.Content.
func (c *NoteContent) Title() string { return c.title }

// Body returns the raw note text.
func (c *NoteContent) Body() string { return c.body }

// View implements menu.Content.
func (c *NoteContent) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c.view.SetWidth(width)
	c.view.SetHeight(height)
	return c.view.View()
}

// HandleKey implements SectionInput.
func (c *NoteContent) HandleKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case keys.Up, keys.Down, keys.PgUp, keys.PgDown, keys.CtrlU, keys.CtrlD:
		c.view, _ = c.view.Update(msg)
		return true
	}
	return false
}

// Editing implements SectionInput.
func (c *NoteContent) Editing() bool { return false }

// =============================================================================
// Logs - debug log tail section
// =============================================================================

// LogsContent tails a log file into a viewport. View runs every frame, so
// the file is re-read only when stat shows it changed.
type LogsContent struct {
	path    string
	view    viewport.Model
	follow  bool
	loaded  bool
	modTime time.Time
	size    int64
}

// NewLogsContent creates the logs section tailing the given file.
func NewLogsContent(path string) *LogsContent {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	vp.SoftWrap = true
	return &LogsContent{path: path, view: vp, follow: true}
}

// Title implements menu.Content.
func (c *LogsContent) Title() string { return "Logs" }

// View implements menu.Content.
func (c *LogsContent) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	// Size before refresh: SetContent wraps against the current viewport
	// width, and the stat guard would otherwise keep a zero-width first
	// render until the file changes.
	c.view.SetWidth(width)
	c.view.SetHeight(height - 1)
	c.refresh()
	return c.renderStatusBar(width) + "\n" + c.view.View()
}

func (c *LogsContent) renderStatusBar(width int) string {
	nameStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	name := nameStyle.Render(filepath.Base(c.path))

	var follow string
	if c.follow {
		follow = " " + lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true).Render("[Follow]")
	} else {
		follow = " " + lipgloss.NewStyle().Foreground(ColorTextMuted).Render("[f: follow]")
	}

	return lipgloss.NewStyle().Width(width).Render(name + follow)
}

func (c *LogsContent) refresh() {
	info, err := os.Stat(c.path)
	if err != nil {
		c.loaded = false
		c.view.SetContent(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No log file yet."))
		return
	}
	if c.loaded && info.ModTime().Equal(c.modTime) && info.Size() == c.size {
		return
	}

	content, err := os.ReadFile(c.path)
	if err != nil {
		c.view.SetContent(fmt.Sprintf("Error reading log file: %v", err))
		return
	}
	c.loaded = true
	c.modTime = info.ModTime()
	c.size = info.Size()
	c.view.SetContent(highlightLogContent(string(content)))
	if c.follow {
		c.view.GotoBottom()
	}
}

// HandleKey implements SectionInput. Scrolling up turns follow off, f turns
// it back on.
func (c *LogsContent) HandleKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case keys.Up, keys.PgUp, keys.CtrlU:
		c.follow = false
		c.view, _ = c.view.Update(msg)
		return true
	case keys.Down, keys.PgDown, keys.CtrlD:
		c.view, _ = c.view.Update(msg)
		return true
	case "f":
		c.follow = !c.follow
		if c.follow {
			c.view.GotoBottom()
		}
		return true
	}
	return false
}

// Editing implements SectionInput.
func (c *LogsContent) Editing() bool { return false }

// highlightLogContent applies syntax highlighting to log content.
func highlightLogContent(content string) string {
	var sb strings.Builder
	lines := strings.SplitSeq(content, "\n")

	for line := range lines {
		sb.WriteString(highlightLogLine(line))
		sb.WriteString("\n")
	}

	return sb.String()
}

// highlightLogLine applies syntax highlighting to a single log line.
func highlightLogLine(line string) string {
	if line == "" {
		return line
	}

	levelErrorStyle := lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	levelWarnStyle := lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	levelInfoStyle := lipgloss.NewStyle().Foreground(ColorInfo)
	levelDebugStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(ColorText)

	if strings.Contains(line, "level=ERROR") {
		line = strings.Replace(line, "level=ERROR", levelErrorStyle.Render("level=ERROR"), 1)
	} else if strings.Contains(line, "level=WARN") {
		line = strings.Replace(line, "level=WARN", levelWarnStyle.Render("level=WARN"), 1)
	} else if strings.Contains(line, "level=INFO") {
		line = strings.Replace(line, "level=INFO", levelInfoStyle.Render("level=INFO"), 1)
	} else if strings.Contains(line, "level=DEBUG") {
		line = strings.Replace(line, "level=DEBUG", levelDebugStyle.Render("level=DEBUG"), 1)
	}

	// Highlight msg= values
	if idx := strings.Index(line, "msg="); idx >= 0 {
		before := line[:idx]
		rest := line[idx:]

		if len(rest) > 4 && rest[4] == '"' {
			endIdx := strings.Index(rest[5:], "\"")
			if endIdx >= 0 {
				msgKey := keyStyle.Render("msg=")
				msgValue := valueStyle.Render(rest[4 : 5+endIdx+1])
				line = before + msgKey + msgValue + rest[5+endIdx+1:]
			}
		}
	}

	return line
}
