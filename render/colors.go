package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	// Monsters
	RgbMonsterBody      = tcell.NewRGBColor(52, 59, 88)    // Muted indigo plate behind the text
	RgbMonsterRemaining = tcell.NewRGBColor(255, 255, 255) // White
	RgbMonsterTyped     = tcell.NewRGBColor(0, 200, 0)     // Normal green
	RgbTargetBody       = tcell.NewRGBColor(90, 40, 40)    // Dark red plate for the target
	RgbNextChar         = tcell.NewRGBColor(255, 165, 0)   // Orange next-character hint
	RgbTargetMarker     = tcell.NewRGBColor(255, 80, 80)   // Normal red

	RgbFloor = tcell.NewRGBColor(100, 100, 100) // Dim gray floor line

	// Bars
	RgbStatusBar  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbHintText   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbToastBg    = tcell.NewRGBColor(255, 192, 203) // Pink achievement toast

	// Overlays
	RgbOverlayBg    = tcell.NewRGBColor(40, 42, 54)
	RgbOverlayTitle = tcell.NewRGBColor(255, 255, 0) // Bright yellow
	RgbOverlayText  = tcell.NewRGBColor(255, 255, 255)
	RgbGameOver     = tcell.NewRGBColor(255, 0, 0)
	RgbDebugText    = tcell.NewRGBColor(0, 200, 200) // Vibrant cyan
)

// GetDifficultyColor returns the color of the difficulty gauge
// progress is 0.0 to 1.0, from base difficulty to the gauge ceiling
func GetDifficultyColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return tcell.NewRGBColor(34, 139, 34) // Forest green at base
	}
	if progress > 1.0 {
		progress = 1.0
	}

	// Green → yellow → red
	if progress < 0.5 {
		t := progress / 0.5
		r := int32(34 + (255-34)*t)
		g := int32(139 + (215-139)*t)
		b := int32(34 - 34*t)
		return tcell.NewRGBColor(r, g, b)
	}
	t := (progress - 0.5) / 0.5
	r := int32(255)
	g := int32(215 - (215-40)*t)
	b := int32(0)
	return tcell.NewRGBColor(r, g, b)
}
