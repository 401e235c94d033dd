package scenarios

import (
	"time"

	"github.com/google-admin/hover/internal/demo"
)

// Exit demonstrates dismissing the widget with a drag:
// - Grabbing the tab reveals the exit zone near the bottom edge
// - The zone magnets the tab once it gets close; dropping there closes
//   the widget and flashes how to get it back
// - c reopens it at the dock it was dragged from
var Exit = &demo.Scenario{
	Name:        "exit",
	Description: "Drop the tab on the exit zone to dismiss the widget",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		// Let the appear animation play out
		demo.Ticks(14),

		// Start dragging; the exit zone fades in near the bottom edge
		demo.Annotate("Drop the tab on ✕ to dismiss the menu"),
		demo.Press(2, 21),
		demo.DragTo(35, 30),
		demo.DragTo(59, 37),
		demo.Ticks(8),
		demo.Release(),
		demo.Ticks(12),
		demo.Wait(1500 * time.Millisecond),

		// Reopen from the keyboard, back at the old dock
		demo.Annotate("c brings it back"),
		demo.KeyWithDesc("c", "Reopen the widget"),
		demo.Ticks(14),

		// Final pause
		demo.Annotate(""),
		demo.Wait(1500 * time.Millisecond),
	},
}
