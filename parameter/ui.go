package parameter

// Presentation Bands
const (
	AllergyBandYellow = 0.4
	AllergyBandRed    = 0.7

	VignetteStart = 0.6
	VignetteAlpha = 0.5

	TintStart = 0.5

	RizzBandLow  = 0.3
	RizzBandHigh = 0.7
)

// Overlay Text
const (
	OverlayWin  = "You Win!\n\nClick to restart"
	OverlayLose = "Game Over!\n\nClick to restart"
)

// Playfield bounds in world units, y grows upward
const (
	WorldMinX = -400.0
	WorldMaxX = 400.0
	WorldMinY = -300.0
	WorldMaxY = 300.0
)

// HUDMeterWidth is the allergy bar width in cells
const HUDMeterWidth = 20
