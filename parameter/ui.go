package parameter

import "time"

// HUD Layout
const (
	// HUDTopRows is the bar and status area above the scene
	HUDTopRows = 3

	// HUDSidePanelGap separates the scene from the task ledger
	HUDSidePanelGap = 2

	// HUDSidePanelWidth is the task ledger column width
	HUDSidePanelWidth = 28

	// HUDBarLabelWidth pads bar captions ("TIME ", "WORK ")
	HUDBarLabelWidth = 5

	// HUDPuzzlePanelWidth is the puzzle overlay width including border
	HUDPuzzlePanelWidth = 30
)

// HUD Glyphs
const (
	HUDBarFilled  = '█'
	HUDBarEmpty   = '░'
	HUDWallGlyph  = '#'
	HUDPlayerChar = '@'
	HUDCatGlyph   = '&'
	HUDCatRest    = '~'
)

// HUD Timing
const (
	// HUDBlinkPeriod toggles blinking ledger entries and the ringing manager slot
	HUDBlinkPeriod = 500 * time.Millisecond

	// HUDScoreRows caps the results listed on the failure screen
	HUDScoreRows = 5
)
