package ui

// Host chrome layout.
const (
	HeaderHeight = 1 // rows
	FooterHeight = 1 // rows
	BorderSize   = 2 // one cell per side
)

// Modal sizing defaults. The modals package receives these through
// syncModalStyles.
const (
	ModalWidth          = 48
	ModalInputCharLimit = 64
	ModalInputWidth     = 36
)

// Layer z-order bands. Higher draws later (on top).
const (
	ZExitZone = 5
	ZPanel    = 10
	ZBubble   = 15
	ZTab      = 20
	ZModal    = 50
	ZDebug    = 100
)
