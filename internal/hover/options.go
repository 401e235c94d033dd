package hover

import (
	"time"

	"github.com/google-admin/hover/internal/geometry"
)

// Defaults for Options fields left at their zero value.
const (
	DefaultAppearDuration = 300 * time.Millisecond
	DefaultDockDuration   = 500 * time.Millisecond
	DefaultIdleDimAfter   = 5 * time.Second
	DefaultDimAlpha       = 0.4
	DefaultFadeDistance   = 400.0
	DefaultCloseDistance  = 300.0
	DefaultMagnetRadius   = 6.0
	DefaultPreviewWidth   = 24
)

// Options tunes the widget. The zero value is usable; fields left zero
// take the defaults above.
type Options struct {
	// TabSize is the docked tab's box. ShrunkTabSize is the variant the
	// tab collapses to while it sits in the expanded panel's strip.
	TabSize       geometry.Size
	ShrunkTabSize geometry.Size

	// PanelSize is the expanded panel's box, clamped to the screen.
	PanelSize geometry.Size

	// PreviewWidth is the preview bubble's width in cells.
	PreviewWidth int

	// AppearDuration paces the appear/disappear scaling; DockDuration
	// paces the eased glide back to the dock.
	AppearDuration time.Duration
	DockDuration   time.Duration

	// IdleDimAfter is how long the collapsed tab sits untouched before
	// fading to DimAlpha. Negative disables dimming. IdleCloseAfter,
	// when positive, closes the widget outright after that much idle
	// time.
	IdleDimAfter   time.Duration
	IdleCloseAfter time.Duration
	DimAlpha       float64

	// FadeDistance and CloseDistance govern the preview bubble's
	// horizontal drag: alpha falls off linearly over FadeDistance and a
	// release past CloseDistance dismisses the widget. Both are in
	// cells; hosts usually pass screen-scaled overrides.
	FadeDistance  float64
	CloseDistance float64

	// ExitZoneSize and ExitMagnetRadius shape the drop target shown
	// while the tab is dragged.
	ExitZoneSize     geometry.Size
	ExitMagnetRadius float64
}

func (o Options) withDefaults() Options {
	if o.TabSize.Empty() {
		o.TabSize = geometry.Size{Width: 5, Height: 3}
	}
	if o.ShrunkTabSize.Empty() {
		o.ShrunkTabSize = geometry.Size{Width: 3, Height: 1}
	}
	if o.PanelSize.Empty() {
		o.PanelSize = geometry.Size{Width: 40, Height: 14}
	}
	if o.PreviewWidth == 0 {
		o.PreviewWidth = DefaultPreviewWidth
	}
	if o.AppearDuration == 0 {
		o.AppearDuration = DefaultAppearDuration
	}
	if o.DockDuration == 0 {
		o.DockDuration = DefaultDockDuration
	}
	if o.IdleDimAfter == 0 {
		o.IdleDimAfter = DefaultIdleDimAfter
	}
	if o.DimAlpha == 0 {
		o.DimAlpha = DefaultDimAlpha
	}
	if o.FadeDistance == 0 {
		o.FadeDistance = DefaultFadeDistance
	}
	if o.CloseDistance == 0 {
		o.CloseDistance = DefaultCloseDistance
	}
	if o.ExitZoneSize.Empty() {
		o.ExitZoneSize = geometry.Size{Width: 5, Height: 3}
	}
	if o.ExitMagnetRadius == 0 {
		o.ExitMagnetRadius = DefaultMagnetRadius
	}
	return o
}
