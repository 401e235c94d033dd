package scenarios

import (
	"time"

	"github.com/google-admin/hover/internal/demo"
)

// Preview demonstrates the peek bubble:
// - p opens a content peek beside the docked tab
// - Dragging the bubble fades it out; releasing past the close distance
//   dismisses the whole widget
// - c brings the widget back at its old dock
var Preview = &demo.Scenario{
	Name:        "preview",
	Description: "Peek at a section, toss the bubble to dismiss",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		// Let the appear animation play out
		demo.Ticks(14),

		// Peek at the selected section without opening the panel
		demo.Annotate("p peeks at the selected section"),
		demo.KeyWithDesc("p", "Preview without expanding"),
		demo.Ticks(8),
		demo.Wait(1500 * time.Millisecond),

		// Drag the bubble away. It fades with distance, and releasing it
		// this far out dismisses the widget entirely.
		demo.Annotate("Drag the bubble away to toss it"),
		demo.Press(12, 21),
		demo.DragTo(45, 21),
		demo.Release(),
		demo.Ticks(12),
		demo.Wait(1200 * time.Millisecond),

		// Reopen from the keyboard
		demo.Annotate("c brings it back"),
		demo.Key("c"),
		demo.Ticks(14),

		// Final pause
		demo.Annotate(""),
		demo.Wait(1200 * time.Millisecond),
	},
}
