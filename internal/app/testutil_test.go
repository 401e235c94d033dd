package app

import (
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/config"
	"github.com/google-admin/hover/internal/geometry"
	"github.com/google-admin/hover/internal/keys"
)

// testConfig creates a config bound to a throwaway file so setters can
// write to disk without touching the real one.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	return cfg
}

// testModel creates a test Model with a throwaway config.
func testModel(t *testing.T) *Model {
	t.Helper()
	return New(testConfig(t), "0.0.0-test")
}

// testModelWithSize creates a test Model, gives it a terminal size, and
// settles the opening animation so the tab sits at its dock.
func testModelWithSize(t *testing.T, width, height int) (*Model, time.Time) {
	t.Helper()
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	now := settle(m, time.Now())
	return m, now
}

// settle pumps synthetic frame ticks so in-flight tab moves finish. It runs
// a fixed two seconds of simulated time; the idle timers stay armed past it,
// so waiting for the scheduler to drain instead would deadlock.
func settle(m *Model, from time.Time) time.Time {
	now := from
	for i := 0; i < 20; i++ {
		now = now.Add(100 * time.Millisecond)
		m.Update(FrameTickMsg(now))
	}
	return now
}

// Keys that map to a bubbletea key code rather than a typed rune.
var specialKeys = map[string]tea.KeyPressMsg{
	keys.Enter:  {Code: tea.KeyEnter},
	keys.Tab:    {Code: tea.KeyTab},
	keys.Escape: {Code: tea.KeyEscape},
	keys.Up:     {Code: tea.KeyUp},
	keys.Down:   {Code: tea.KeyDown},
	keys.Left:   {Code: tea.KeyLeft},
	keys.Right:  {Code: tea.KeyRight},
	keys.PgUp:   {Code: tea.KeyPgUp},
	keys.PgDown: {Code: tea.KeyPgDown},
	keys.Space:  {Code: tea.KeySpace},
	keys.CtrlC:  {Code: 'c', Mod: tea.ModCtrl},
}

// keyPress builds the KeyPressMsg for a key string ("e", "enter", "ctrl+c").
// Plain characters carry Text so form inputs receive them as typed runes.
func keyPress(key string) tea.KeyPressMsg {
	if msg, ok := specialKeys[key]; ok {
		return msg
	}
	if r := []rune(key); len(r) == 1 {
		return tea.KeyPressMsg{Code: r[0], Text: key}
	}
	return tea.KeyPressMsg{Text: key}
}

// sendKey runs one key press through Update and returns the updated model.
func sendKey(m *Model, key string) *Model {
	next, _ := m.Update(keyPress(key))
	return next.(*Model)
}

// typeText sends text one rune at a time, like a user typing into a form.
func typeText(m *Model, text string) *Model {
	for _, r := range text {
		m = sendKey(m, string(r))
	}
	return m
}

// Mouse message constructors, all left-button.

func mouseClick(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func mouseMotion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func mouseRelease(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

// tap sends a click and release at the same cell, which the touch surface
// reads as a tap.
func tap(m *Model, x, y int) {
	m.Update(mouseClick(x, y))
	m.Update(mouseRelease(x, y))
}

// tabCenter computes the docked tab's center from the widget's persisted
// dock, using the same geometry the tab itself docks with.
func tabCenter(m *Model, width, height int) (int, int) {
	mem := m.Hover().SaveState()
	sp := geometry.SidePosition{
		Side:            geometry.SideFromInt(mem.DockSide),
		VerticalPercent: mem.DockPercent,
	}
	screen := geometry.Size{Width: width, Height: height}
	tab := geometry.Size{Width: 5, Height: 3} // default Options.TabSize
	cx, cy := sp.DockCenter(screen, tab)
	return int(cx), int(cy)
}
