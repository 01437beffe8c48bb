package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the HUD
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbSpeedLow  = tcell.NewRGBColor(0, 200, 0)   // Normal Green
	RgbSpeedMid  = tcell.NewRGBColor(255, 255, 0) // Bright Yellow
	RgbSpeedHigh = tcell.NewRGBColor(255, 80, 80) // Normal Red

	RgbEnergyFull  = tcell.NewRGBColor(0, 200, 200)   // Vibrant Cyan
	RgbEnergyEmpty = tcell.NewRGBColor(60, 100, 200)  // Dark Blue
	RgbBarDim      = tcell.NewRGBColor(50, 50, 50)    // Very dark gray, unfilled bar
	RgbStatusText  = tcell.NewRGBColor(255, 255, 255) // White
	RgbLabelText   = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbRibbonTrack    = tcell.NewRGBColor(80, 80, 100)   // Muted track line
	RgbRibbonCorridor = tcell.NewRGBColor(140, 190, 255) // Bright Blue corridor spans
	RgbRibbonMarker   = tcell.NewRGBColor(255, 255, 0)   // Booster markers
	RgbRibbonRacer    = tcell.NewRGBColor(255, 165, 0)   // Orange racer position

	RgbPaintNeutral = tcell.NewRGBColor(180, 180, 180)
	RgbPaintRail    = tcell.NewRGBColor(255, 120, 120) // Bright Red rail contact

	RgbBoostActive = tcell.NewRGBColor(50, 255, 50) // Bright Green
)

// SpeedColor maps normalized speed to the low/mid/high gradient
func SpeedColor(norm float64) tcell.Color {
	switch {
	case norm < 0.5:
		return RgbSpeedLow
	case norm < 0.85:
		return RgbSpeedMid
	default:
		return RgbSpeedHigh
	}
}
