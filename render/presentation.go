package render

import (
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/parameter"
)

// AllergyBand is the meter fill color for an allergy fraction
func AllergyBand(p float64) RGB {
	switch {
	case p < parameter.AllergyBandYellow:
		return RGBBandGreen
	case p < parameter.AllergyBandRed:
		return RGBBandYellow
	default:
		return RGBBandRed
	}
}

// VignetteAlpha is the danger border opacity, zero up to the start fraction
func VignetteAlpha(p float64) float64 {
	if p <= parameter.VignetteStart {
		return 0
	}
	if p > 1 {
		p = 1
	}
	return (p - parameter.VignetteStart) / (1 - parameter.VignetteStart) * parameter.VignetteAlpha
}

// BeeTint shifts the bee from yellow toward red past the tint start
func BeeTint(p float64) RGB {
	if p <= parameter.TintStart {
		return RGBBee
	}
	if p > 1 {
		p = 1
	}
	amount := (p - parameter.TintStart) * 2
	return RGBf(1.0, 0.9-amount*0.5, 0.2)
}

// RizzColor is the head meter color for a rizz fraction
func RizzColor(frac float64) RGB {
	switch {
	case frac < parameter.RizzBandLow:
		return RGBBandRed
	case frac > parameter.RizzBandHigh:
		return RGBBandGreen
	default:
		return RGBRizzOrange
	}
}

// OverlayText is the centered message for a phase, empty while playing
func OverlayText(phase string) string {
	switch phase {
	case engine.PhaseWon.String():
		return parameter.OverlayWin
	case engine.PhaseLost.String():
		return parameter.OverlayLose
	default:
		return ""
	}
}
