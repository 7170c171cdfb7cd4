package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the terminal front-end
var (
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)    // Outside the arena
	RgbArena        = tcell.NewRGBColor(32, 34, 48)    // Slightly lifted playfield
	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg     = tcell.NewRGBColor(50, 50, 50)    // Very dark gray
	RgbStatusPaused = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbHint         = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbBallDefault  = tcell.NewRGBColor(0, 179, 77)    // 0.0, 0.7, 0.3
)

// Glyphs
const (
	BallRune = '█'
)
