// Package puzzle implements the minigames a slot opens and the manager that
// routes input to the open one and reports its outcome back to the slot.
package puzzle

import (
	"time"

	"github.com/lixenwraith/crunch-time/core"
)

// Key classifies an input event
type Key int

const (
	KeyRune Key = iota
	KeyBackspace
	KeyEnter
	KeyEscape
)

// Input is a single key press routed to the open puzzle
type Input struct {
	Key  Key
	Rune rune
}

// Result is the outcome of feeding a puzzle input or time
type Result int

const (
	ResultNone Result = iota
	ResultSolved
	ResultMistake
)

// Puzzle is one open minigame
// Implementations are single-use: the manager builds a fresh one per start
type Puzzle interface {
	Kind() core.PuzzleKind
	HandleInput(in Input) Result
	// Update advances timed behaviour; inRange is the host slot's trigger state
	Update(dt time.Duration, inRange bool) Result
	// Lines is the text the HUD draws for the puzzle panel
	Lines() []string
}
