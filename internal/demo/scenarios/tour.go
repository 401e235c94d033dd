// Package scenarios contains built-in demo scenarios for hover.
//
// Every scenario runs on a 120x40 screen and starts from first-run
// defaults, so the tab docks on the left edge at half height with its body
// around column 2, row 21. Step coordinates below assume exactly that.
package scenarios

import (
	"time"

	"github.com/google-admin/hover/internal/demo"
)

// Tour demonstrates the full widget lifecycle:
// - The tab fades in at its default dock
// - Dragging it re-docks it on the opposite edge
// - Tapping it opens the section panel
// - Chip taps switch sections, a tap outside folds the panel away
var Tour = &demo.Scenario{
	Name:        "tour",
	Description: "Re-dock the tab, open the panel, switch sections",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		// Let the appear animation play out at the default dock
		demo.Annotate("A floating menu tab docks to the screen edge"),
		demo.Ticks(14),
		demo.Wait(1200 * time.Millisecond),

		// Grab the tab, sweep it across the screen, and drop it near the
		// right edge at three quarters height. The spring re-docks it there.
		demo.Annotate("Drag the tab anywhere; release to re-dock"),
		demo.Press(2, 21),
		demo.DragTo(40, 15),
		demo.DragTo(85, 28),
		demo.DragTo(100, 30),
		demo.Release(),
		demo.Ticks(18),
		demo.Wait(1 * time.Second),

		// Tap the re-docked tab to open the panel
		demo.Annotate("Tap the tab to open the panel"),
		demo.Tap(117, 31),
		demo.Ticks(18),
		demo.Wait(1500 * time.Millisecond),

		// The chip strip across the panel top switches sections
		demo.Annotate("Chips along the top switch sections"),
		demo.Tap(90, 26),
		demo.Ticks(10),
		demo.Wait(1500 * time.Millisecond),
		demo.Tap(94, 26),
		demo.Ticks(10),
		demo.Wait(1200 * time.Millisecond),

		// A tap anywhere outside folds the panel back into the tab
		demo.Annotate("Tap outside to fold the panel away"),
		demo.Tap(30, 10),
		demo.Ticks(18),

		// Final pause at the new dock
		demo.Annotate(""),
		demo.Wait(1500 * time.Millisecond),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Tour,
		Preview,
		Exit,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
