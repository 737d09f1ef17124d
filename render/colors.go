package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbDim        = tcell.NewRGBColor(90, 90, 110)   // Unfilled bars, idle slots
	RgbWall       = tcell.NewRGBColor(120, 120, 140) // Gray walls
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange player
	RgbHighlight  = tcell.NewRGBColor(255, 255, 0)   // Highlighted slot
	RgbInRange    = tcell.NewRGBColor(144, 238, 144) // Slot under the player
	RgbCooldown   = tcell.NewRGBColor(100, 150, 255) // Cooling slot
	RgbPrompt     = tcell.NewRGBColor(255, 255, 255) // Prompt text
	RgbBlink      = tcell.NewRGBColor(255, 80, 80)   // Ringing manager entry
	RgbFailure    = tcell.NewRGBColor(200, 50, 50)   // Failure banner
	RgbPanel      = tcell.NewRGBColor(40, 42, 60)    // Puzzle overlay background
	RgbPaused     = tcell.NewRGBColor(128, 0, 128)   // Pause badge
	RgbCat        = tcell.NewRGBColor(222, 184, 135) // Tan office cat
)

// SequenceColors map color-sequence palette indices to terminal colors
var SequenceColors = [...]tcell.Color{
	tcell.NewRGBColor(255, 80, 80),   // red
	tcell.NewRGBColor(0, 200, 0),     // green
	tcell.NewRGBColor(100, 150, 255), // blue
	tcell.NewRGBColor(255, 255, 0),   // yellow
}

// GetBarColor returns the fill color at a position in a progress bar
// Gradient runs red at 0, through yellow, to green at 1
func GetBarColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return tcell.NewRGBColor(0, 0, 0) // Black for unfilled
	}
	if progress > 1.0 {
		progress = 1.0
	}

	if progress < 0.5 { // Red to Yellow
		t := progress / 0.5
		r := int32(200 + (255-200)*t)
		g := int32(40 + (215-40)*t)
		return tcell.NewRGBColor(r, g, 0)
	}
	// Yellow to Green
	t := (progress - 0.5) / 0.5
	r := int32(255 - (255-34)*t)
	g := int32(215 - (215-180)*t)
	b := int32(0 + (34-0)*t)
	return tcell.NewRGBColor(r, g, b)
}
