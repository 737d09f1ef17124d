package puzzle

import (
	"fmt"
	"time"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/parameter"
)

// TimedWait completes after the player stays in the slot's trigger long enough
// Time outside the trigger does not count but is not lost
type TimedWait struct {
	required time.Duration
	waited   time.Duration
	inRange  bool
}

// NewTimedWait creates a wait of parameter.WaitTimeRequired
func NewTimedWait() *TimedWait {
	return &TimedWait{required: parameter.WaitTimeRequired}
}

func (p *TimedWait) Kind() core.PuzzleKind { return core.PuzzleTimedWait }

func (p *TimedWait) HandleInput(Input) Result { return ResultNone }

func (p *TimedWait) Update(dt time.Duration, inRange bool) Result {
	p.inRange = inRange
	if !inRange {
		return ResultNone
	}
	p.waited += dt
	if p.waited >= p.required {
		return ResultSolved
	}
	return ResultNone
}

func (p *TimedWait) Lines() []string {
	status := "Wait..."
	if !p.inRange {
		status = "! Stay in the zone"
	}
	return []string{
		status,
		fmt.Sprintf("Wait: %.1f/%.1fs", p.waited.Seconds(), p.required.Seconds()),
		"Esc to leave",
	}
}

// Progress returns the waited fraction
func (p *TimedWait) Progress() float64 {
	if p.waited >= p.required {
		return 1
	}
	return float64(p.waited) / float64(p.required)
}
