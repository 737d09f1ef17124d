package puzzle

import (
	"math/rand"
	"strings"
	"time"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/parameter"
)

// CodeEntry asks for a displayed digit code; a wrong code clears the input
type CodeEntry struct {
	target string
	input  []rune
}

// NewCodeEntry draws a random code of parameter.CodeLength digits
func NewCodeEntry(rng *rand.Rand) *CodeEntry {
	var b strings.Builder
	for i := 0; i < parameter.CodeLength; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return &CodeEntry{target: b.String()}
}

func (p *CodeEntry) Kind() core.PuzzleKind { return core.PuzzleCodeEntry }

func (p *CodeEntry) HandleInput(in Input) Result {
	switch in.Key {
	case KeyRune:
		if in.Rune >= '0' && in.Rune <= '9' && len(p.input) < len(p.target) {
			p.input = append(p.input, in.Rune)
		}
	case KeyBackspace:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case KeyEnter:
		if string(p.input) == p.target {
			return ResultSolved
		}
		p.input = p.input[:0]
		return ResultMistake
	}
	return ResultNone
}

func (p *CodeEntry) Update(time.Duration, bool) Result { return ResultNone }

func (p *CodeEntry) Lines() []string {
	slots := make([]rune, len(p.target))
	for i := range slots {
		if i < len(p.input) {
			slots[i] = p.input[i]
		} else {
			slots[i] = '_'
		}
	}
	return []string{
		"Access code: " + p.target,
		"Input: " + string(slots),
		"Enter to submit, Esc to leave",
	}
}

// Target returns the expected code
func (p *CodeEntry) Target() string { return p.target }
