package parameter

import "time"

// Code Entry Puzzle
const (
	CodeLength = 6
)

// Math Puzzle
const (
	MathMinNumber     = 1
	MathMaxNumber     = 20
	MathMaxOperations = 3
	MathMaxInputLen   = 6
)

// Color Sequence Puzzle
const (
	ColorSequenceLength = 4

	// ColorShowTime is how long each color is shown during playback
	ColorShowTime = 1 * time.Second

	// ColorShowGap is the pause between shown colors
	ColorShowGap = 500 * time.Millisecond
)

// Timed Wait Puzzle
const (
	// WaitTimeRequired is the in-range time needed to finish the wait puzzle
	WaitTimeRequired = 5 * time.Second
)

// Math operators drawn for each step, division only when it divides exactly
const MathOperators = "+-"

// Color Sequence palette keys, one per color
const ColorPaletteSize = 4

// Feedback timing
const (
	// ColorIntroDelay precedes the first shown color
	ColorIntroDelay = 1 * time.Second
)
