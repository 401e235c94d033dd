// Package demo provides infrastructure for generating demos of the hover
// widget. Scenarios drive the real app model with synthetic input and a
// synthetic clock, so recordings are deterministic and need no terminal.
package demo

import (
	"time"

	"github.com/google-admin/hover/internal/config"
)

// StepType identifies what a Step does when the executor reaches it.
type StepType int

// Input steps drive the widget; the rest control the synthetic clock and
// what lands in the recording.
const (
	StepWait     StepType = iota // pause for a duration
	StepKey                      // press one key
	StepPress                    // push the left mouse button down at a cell
	StepDragTo                   // walk the held pointer to a cell
	StepRelease                  // let go at the pointer's last cell
	StepTap                      // press and release at one cell
	StepTicks                    // advance the animation clock frame by frame
	StepCapture                  // grab the current frame
	StepAnnotate                 // set the caption on following frames
)

// Step is one scripted action. Only the fields its Type reads are set;
// the builders below keep scenario scripts terse.
type Step struct {
	Type        StepType
	Description string        // optional note on what the step shows
	Key         string        // StepKey
	Duration    time.Duration // StepWait
	X, Y        int           // StepPress, StepDragTo, StepTap
	Count       int           // StepTicks
	Annotation  string        // StepAnnotate
}

// Scenario is a self-contained demo script: the terminal geometry, the
// persisted state the app boots from, and the steps to play.
type Scenario struct {
	Name        string
	Description string
	Width       int // terminal columns, Validate fills defaultWidth when unset
	Height      int // terminal rows, Validate fills defaultHeight when unset
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup is the persisted state the scenario starts from, written to
// a throwaway config before the app boots. Zero fields are not persisted,
// which leaves the widget's own first-run defaults in place.
type ScenarioSetup struct {
	// Dock placement: side 0 is the left edge, 1 the right; DockPercent
	// is the vertical position along it.
	DockSide    int
	DockPercent float64

	// SelectedSection is the section the widget opens on.
	SelectedSection string

	// CustomSections exist before the app starts, as if added in an
	// earlier run.
	CustomSections []config.CustomSection

	// Theme is the UI theme name. Empty keeps the default.
	Theme string

	// DebugRegions tints the touch regions from the first frame.
	DebugRegions bool
}

// DefaultSetup returns a first-run setup: nothing persisted, so the widget
// docks at its own defaults with the first section selected.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{}
}

// Terminal geometry used when a scenario leaves Width or Height unset.
const (
	defaultWidth  = 120
	defaultHeight = 40
)

// Validate rejects scenarios missing a name and fills unset geometry and
// setup with defaults. It mutates the receiver.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = defaultWidth
	}
	if s.Height <= 0 {
		s.Height = defaultHeight
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	return nil
}

// ValidationError reports a scenario field Validate rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builders. Each fills just the fields its type reads, so scenario
// scripts read like a storyboard.

// Wait pauses for d. The executor keeps capturing while an animation is
// still running, so pauses after a gesture record its settle.
func Wait(d time.Duration) Step { return Step{Type: StepWait, Duration: d} }

// Key presses a single key, named the way Bubble Tea names it ("enter",
// "esc", "e").
func Key(key string) Step { return Step{Type: StepKey, Key: key} }

// KeyWithDesc is Key with a note on what the press shows.
func KeyWithDesc(key, desc string) Step {
	return Step{Type: StepKey, Key: key, Description: desc}
}

// Press pushes the left mouse button down at cell (x, y).
func Press(x, y int) Step { return Step{Type: StepPress, X: x, Y: y} }

// DragTo walks the held pointer to (x, y) in small motions, so drag
// thresholds see movement rather than a teleport.
func DragTo(x, y int) Step { return Step{Type: StepDragTo, X: x, Y: y} }

// Release lets go of the button at the pointer's last cell.
func Release() Step { return Step{Type: StepRelease} }

// Tap presses and releases at (x, y), which the widget reads as a tap.
func Tap(x, y int) Step { return Step{Type: StepTap, X: x, Y: y} }

// Ticks advances the animation clock n frames, capturing each one. Use it
// to record an animation the previous step started.
func Ticks(n int) Step { return Step{Type: StepTicks, Count: n} }

// Annotate sets the caption carried by every frame captured from here on,
// until the next Annotate replaces it. Annotate("") clears the caption.
func Annotate(text string) Step { return Step{Type: StepAnnotate, Annotation: text} }

// Capture grabs the current frame even when the executor is not capturing
// every step.
func Capture() Step { return Step{Type: StepCapture} }
