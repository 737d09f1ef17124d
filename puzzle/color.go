package puzzle

import (
	"math/rand"
	"strings"
	"time"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/parameter"
)

// ColorNames index the palette; keys 1..4 select them
var ColorNames = [parameter.ColorPaletteSize]string{"red", "green", "blue", "yellow"}

// ColorSequence plays back a sequence of colors then asks for it in order
// Input is ignored during playback; a wrong color replays the sequence
type ColorSequence struct {
	sequence []int
	entered  []int

	showing bool
	elapsed time.Duration
}

// NewColorSequence draws a sequence of parameter.ColorSequenceLength colors and starts playback
func NewColorSequence(rng *rand.Rand) *ColorSequence {
	seq := make([]int, parameter.ColorSequenceLength)
	for i := range seq {
		seq[i] = rng.Intn(parameter.ColorPaletteSize)
	}
	return &ColorSequence{sequence: seq, showing: true}
}

func (p *ColorSequence) Kind() core.PuzzleKind { return core.PuzzleColorSequence }

func playbackLength(n int) time.Duration {
	return parameter.ColorIntroDelay + time.Duration(n)*(parameter.ColorShowTime+parameter.ColorShowGap)
}

func (p *ColorSequence) Update(dt time.Duration, _ bool) Result {
	if !p.showing {
		return ResultNone
	}
	p.elapsed += dt
	if p.elapsed >= playbackLength(len(p.sequence)) {
		p.showing = false
		p.elapsed = 0
	}
	return ResultNone
}

// Lit returns the palette index currently shown during playback, -1 otherwise
func (p *ColorSequence) Lit() int {
	if !p.showing || p.elapsed < parameter.ColorIntroDelay {
		return -1
	}
	step := parameter.ColorShowTime + parameter.ColorShowGap
	since := p.elapsed - parameter.ColorIntroDelay
	i := int(since / step)
	if i >= len(p.sequence) || since%step >= parameter.ColorShowTime {
		return -1
	}
	return p.sequence[i]
}

func (p *ColorSequence) HandleInput(in Input) Result {
	if p.showing || in.Key != KeyRune {
		return ResultNone
	}
	c := int(in.Rune - '1')
	if c < 0 || c >= parameter.ColorPaletteSize {
		return ResultNone
	}

	if p.sequence[len(p.entered)] != c {
		p.entered = p.entered[:0]
		p.showing = true
		p.elapsed = 0
		return ResultMistake
	}
	p.entered = append(p.entered, c)
	if len(p.entered) == len(p.sequence) {
		return ResultSolved
	}
	return ResultNone
}

func (p *ColorSequence) Lines() []string {
	var palette strings.Builder
	for i, name := range ColorNames {
		if i > 0 {
			palette.WriteString("  ")
		}
		mark := " "
		if p.Lit() == i {
			mark = "*"
		}
		palette.WriteString(mark)
		palette.WriteByte(byte('1' + i))
		palette.WriteByte(':')
		palette.WriteString(name)
	}

	status := "Repeat sequence!"
	if p.showing {
		status = "Remember sequence..."
	} else if len(p.entered) > 0 {
		status = "Correct! left: " + string(rune('0'+len(p.sequence)-len(p.entered)))
	}
	return []string{status, palette.String(), "Esc to leave"}
}

// Showing reports playback in progress
func (p *ColorSequence) Showing() bool { return p.showing }

// Sequence returns the expected palette indices
func (p *ColorSequence) Sequence() []int {
	out := make([]int, len(p.sequence))
	copy(out, p.sequence)
	return out
}
