package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBf builds a color from [0,1] channels
func RGBf(r, g, b float64) RGB {
	return RGB{R: clamp(r * 255), G: clamp(g * 255), B: clamp(b * 255)}
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend alpha-blends src over c
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies every channel by f
func Scale(c RGB, f float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * f),
		G: clamp(float64(c.G) * f),
		B: clamp(float64(c.B) * f),
	}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Palette
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBBackground = RGB{26, 27, 38}
	RGBText       = RGB{230, 230, 230}
	RGBDim        = RGB{110, 110, 130}

	RGBBee       = RGBf(1.0, 0.9, 0.2)
	RGBDiva      = RGB{230, 120, 220}
	RGBHealer    = RGB{120, 220, 240}
	RGBStem      = RGB{60, 160, 70}
	RGBHead      = RGB{250, 140, 190}
	RGBCache     = RGB{250, 200, 60}
	RGBCacheDry  = RGB{90, 80, 50}
	RGBPollen    = RGB{255, 230, 90}
	RGBParticle  = RGB{255, 250, 180}
	RGBAchoo     = RGB{255, 255, 255}
	RGBVignette  = RGBf(0.9, 0.1, 0.1)
	RGBMeterBack = RGBf(0.2, 0.2, 0.2)

	RGBBandGreen  = RGBf(0.2, 0.8, 0.2)
	RGBBandYellow = RGBf(0.9, 0.8, 0.1)
	RGBBandRed    = RGBf(0.9, 0.2, 0.2)
	RGBRizzOrange = RGBf(0.95, 0.55, 0.1)
)
