package hover

import (
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google-admin/hover/internal/menu"
)

// fakeStore is an in-memory Store recording every write.
type fakeStore struct {
	ints    map[string]int
	floats  map[string]float64
	strings map[string]string
	setErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ints:    make(map[string]int),
		floats:  make(map[string]float64),
		strings: make(map[string]string),
	}
}

func (s *fakeStore) GetInt(key string) (int, bool) {
	v, ok := s.ints[key]
	return v, ok
}

func (s *fakeStore) GetFloat(key string) (float64, bool) {
	v, ok := s.floats[key]
	return v, ok
}

func (s *fakeStore) GetString(key string) (string, bool) {
	v, ok := s.strings[key]
	return v, ok
}

func (s *fakeStore) SetInt(key string, value int) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.ints[key] = value
	return nil
}

func (s *fakeStore) SetFloat(key string, value float64) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.floats[key] = value
	return nil
}

func (s *fakeStore) SetString(key string, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.strings[key] = value
	return nil
}

// stubContent is a minimal menu.Content implementation.
type stubContent struct {
	title string
	body  string
}

func (c *stubContent) Title() string {
	return c.title
}

func (c *stubContent) View(width, height int) string {
	return c.body
}

// testSections builds n distinct sections with stable IDs sec-0..sec-n-1.
func testSections(n int) []menu.Section {
	glyphs := []string{"A", "B", "C", "D", "E"}
	secs := make([]menu.Section, n)
	for i := range secs {
		secs[i] = menu.Section{
			ID:      menu.SectionID(fmt.Sprintf("sec-%d", i)),
			Tab:     menu.TabDescriptor{Glyph: glyphs[i%len(glyphs)], Label: fmt.Sprintf("Section %d", i)},
			Content: &stubContent{title: fmt.Sprintf("Section %d", i), body: "body text"},
			Preview: &menu.Preview{Title: fmt.Sprintf("Preview %d", i), Body: "Two new items."},
		}
	}
	return secs
}

func testMenu(t *testing.T, n int) *menu.Menu {
	t.Helper()
	m, err := menu.New(testSections(n)...)
	if err != nil {
		t.Fatalf("menu.New: %v", err)
	}
	return m
}

// testOptions disables idle dimming and shortens the preview drag
// thresholds so gesture tests stay within an 80x24 screen. Everything else
// takes the package defaults.
func testOptions() Options {
	return Options{
		IdleDimAfter:  -1,
		FadeDistance:  20,
		CloseDistance: 10,
	}
}

// pump drives the animation clock in fixed steps until the scheduler goes
// quiet, returning the time it stopped at.
func pump(t *testing.T, v *View, start time.Time) time.Time {
	t.Helper()
	now := start
	for i := 0; i < 400; i++ {
		if !v.Step(now) {
			return now
		}
		now = now.Add(50 * time.Millisecond)
	}
	t.Fatal("animations never settled")
	return now
}

// openCollapsed builds a view over a fresh store and menu, delivers the
// screen size, and settles the entry choreography.
func openCollapsed(t *testing.T, sections int) (*View, *fakeStore, time.Time) {
	t.Helper()
	store := newFakeStore()
	v := New(store, testOptions())
	v.SetScreenSize(80, 24)
	v.SetMenu(testMenu(t, sections))
	now := pump(t, v, time.Unix(0, 0))
	if v.StateKind() != StateCollapsed {
		t.Fatalf("state = %v, want %v", v.StateKind(), StateCollapsed)
	}
	return v, store, now
}

// openExpanded settles openCollapsed and then taps the tab.
func openExpanded(t *testing.T, sections int) (*View, *fakeStore, time.Time) {
	t.Helper()
	v, store, now := openCollapsed(t, sections)
	tap(v, v.tab.Center().X, v.tab.Center().Y)
	now = pump(t, v, now)
	if v.StateKind() != StateExpanded {
		t.Fatalf("state = %v, want %v", v.StateKind(), StateExpanded)
	}
	return v, store, now
}

// mouseClick creates a tea.MouseClickMsg at the given coordinates.
func mouseClick(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}

// mouseMotion creates a tea.MouseMotionMsg at the given coordinates.
func mouseMotion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}

// mouseRelease creates a tea.MouseReleaseMsg at the given coordinates.
func mouseRelease(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}

// tap presses and releases in place.
func tap(v *View, x, y int) {
	v.HandleMouse(mouseClick(x, y))
	v.HandleMouse(mouseRelease(x, y))
}

// dragGesture presses at the first point, moves through the rest, and
// releases at the last one.
func dragGesture(v *View, points ...[2]int) {
	v.HandleMouse(mouseClick(points[0][0], points[0][1]))
	for _, p := range points[1:] {
		v.HandleMouse(mouseMotion(p[0], p[1]))
	}
	last := points[len(points)-1]
	v.HandleMouse(mouseRelease(last[0], last[1]))
}

// layerAt returns the first layer with the given z band, failing the test
// when none exists.
func layerAt(t *testing.T, v *View, z int) layerInfo {
	t.Helper()
	for _, l := range v.Layers() {
		if l.Z == z {
			return layerInfo{l.X, l.Y, l.Alpha, l.Content}
		}
	}
	t.Fatalf("no layer at z %d (got %d layers)", z, len(v.Layers()))
	return layerInfo{}
}

type layerInfo struct {
	x, y    int
	alpha   float64
	content string
}

// hasLayerAt reports whether any layer sits in the given z band.
func hasLayerAt(v *View, z int) bool {
	for _, l := range v.Layers() {
		if l.Z == z {
			return true
		}
	}
	return false
}
