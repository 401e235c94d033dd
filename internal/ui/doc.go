// Package ui provides the user interface components for the hover demo app.
//
// # Overview
//
// The ui package implements the visual layer shared by the hover widget and
// the host application using the Bubble Tea framework and Lipgloss styling
// library. The widget itself never prints to the terminal; it produces
// positioned Layers that the host blends over its own content with Compose.
//
// # Layout System
//
// The host layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│                                          ┌───┐      │
//	│   Host dashboard content                 │ ✶ │      │
//	│   (base layer)                           └───┘      │
//	│                                      docked tab     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// The widget's tab, preview bubble, and expanded panel float over the middle
// region as layers; they are not part of the host's flow layout.
//
// # Compositing
//
// Compose(base, width, height, layers) rasterizes the base string into a
// cell buffer, then draws each layer at its X/Y offset in ascending Z order.
// Layers with Alpha below 1 are blended into the cells underneath, which is
// how the tab fades in and out. Z bands are fixed in constants.go:
// exit zone under panel under bubble under tab, modals above all widget
// layers, debug tint on top of everything.
//
// # Components
//
// Header: Displays the application title and the widget's current state with
// the selected section, plus the dock summary in parentheses. Uses a gradient
// background with the primary color.
//
// Footer: Shows context-aware keyboard shortcuts. The displayed shortcuts
// change with the widget state, and a transient flash message replaces them
// while active.
//
// Tab, Bubble, Panel, Zone: Renderers for the widget's own surfaces. They
// take a size and return a styled string; the hover package decides where
// the surface goes.
//
// Modal: Popup host for the dialog states in the modals subpackage:
//   - HelpState: keyboard shortcut reference with filtering
//   - SettingsState: theme and behavior options
//   - AddSectionState: form for adding a menu section
//
// Host: The dashboard cards the widget floats over. The host content is
// deliberately static; it exists to show the widget blending over something.
//
// Section contents: InboxContent, ScratchContent, SnippetsContent,
// AboutContent, and LogsContent implement menu.Content for the demo menu.
//
// # Themes
//
// Themes are defined in theme.go. SetTheme regenerates every style var from
// the selected palette and pushes the modal styles into the modals
// subpackage, which cannot import ui. The dark palette uses:
//   - ColorPrimary (#7C3AED): Purple, used for the header and the tab
//   - ColorSecondary (#06B6D4): Cyan, used for footer keys and highlights
//   - ColorBg (#1F2937): Dark background
//   - ColorText (#F9FAFB): Light text
//   - ColorTextMuted (#9CA3AF): Muted text for secondary content
package ui
