package puzzle

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/parameter"
)

// Math asks for the value of a short left-to-right expression
// A wrong answer draws a new problem
type Math struct {
	rng       *rand.Rand
	operators string
	equation  string
	answer    int
	input     []rune
}

// NewMath creates a problem over parameter.MathOperators
func NewMath(rng *rand.Rand) *Math {
	return NewMathWithOperators(rng, parameter.MathOperators)
}

// NewMathWithOperators creates a problem over the given subset of "+-*/"
func NewMathWithOperators(rng *rand.Rand, operators string) *Math {
	if operators == "" {
		operators = "+"
	}
	p := &Math{rng: rng, operators: operators}
	p.generate()
	return p
}

func (p *Math) generate() {
	lo, hi := parameter.MathMinNumber, parameter.MathMaxNumber
	ops := 1 + p.rng.Intn(parameter.MathMaxOperations)

	result := lo + p.rng.Intn(hi-lo+1)
	var b strings.Builder
	b.WriteString(strconv.Itoa(result))

	for i := 0; i < ops; i++ {
		op := p.operators[p.rng.Intn(len(p.operators))]
		n := lo + p.rng.Intn(hi-lo+1)

		// Inexact division falls back to addition
		if op == '/' && (n == 0 || result%n != 0) {
			op = '+'
			n = 1 + p.rng.Intn(hi)
		}

		switch op {
		case '+':
			result += n
		case '-':
			result -= n
		case '*':
			result *= n
		case '/':
			result /= n
		}
		b.WriteByte(' ')
		b.WriteByte(op)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(n))
	}

	b.WriteString(" = ?")
	p.equation = b.String()
	p.answer = result
	p.input = p.input[:0]
}

func (p *Math) Kind() core.PuzzleKind { return core.PuzzleMath }

func (p *Math) HandleInput(in Input) Result {
	switch in.Key {
	case KeyRune:
		digit := in.Rune >= '0' && in.Rune <= '9'
		sign := in.Rune == '-' && len(p.input) == 0
		if (digit || sign) && len(p.input) < parameter.MathMaxInputLen {
			p.input = append(p.input, in.Rune)
		}
	case KeyBackspace:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case KeyEnter:
		got, err := strconv.Atoi(string(p.input))
		if err == nil && got == p.answer {
			return ResultSolved
		}
		p.generate()
		return ResultMistake
	}
	return ResultNone
}

func (p *Math) Update(time.Duration, bool) Result { return ResultNone }

func (p *Math) Lines() []string {
	in := string(p.input)
	if in == "" {
		in = "_"
	}
	return []string{
		p.equation,
		"Answer: " + in,
		"Enter to submit, Esc to leave",
	}
}

// Equation returns the displayed expression
func (p *Math) Equation() string { return p.equation }

// Answer returns the expected value
func (p *Math) Answer() int { return p.answer }
