package puzzle

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/parameter"
)

func typeString(p Puzzle, s string) {
	for _, r := range s {
		p.HandleInput(Input{Key: KeyRune, Rune: r})
	}
}

func TestCodeEntry(t *testing.T) {
	p := NewCodeEntry(rand.New(rand.NewSource(1)))
	if len(p.Target()) != parameter.CodeLength {
		t.Fatalf("Expected %d digit code, got %q", parameter.CodeLength, p.Target())
	}

	typeString(p, "x")
	typeString(p, "000000")
	if p.Target() != "000000" {
		if r := p.HandleInput(Input{Key: KeyEnter}); r != ResultMistake {
			t.Errorf("Expected mistake, got %v", r)
		}
	}

	typeString(p, p.Target()+"9")
	if r := p.HandleInput(Input{Key: KeyEnter}); r != ResultSolved {
		t.Errorf("Expected solved, got %v", r)
	}
}

func TestCodeEntryBackspace(t *testing.T) {
	p := NewCodeEntry(rand.New(rand.NewSource(2)))
	typeString(p, "7")
	p.HandleInput(Input{Key: KeyBackspace})
	p.HandleInput(Input{Key: KeyBackspace})
	typeString(p, p.Target())
	if r := p.HandleInput(Input{Key: KeyEnter}); r != ResultSolved {
		t.Errorf("Expected solved after backspace, got %v", r)
	}
}

func TestMathAnswer(t *testing.T) {
	p := NewMath(rand.New(rand.NewSource(3)))
	typeString(p, strconv.Itoa(p.Answer()))
	if r := p.HandleInput(Input{Key: KeyEnter}); r != ResultSolved {
		t.Errorf("Expected solved for %q = %d, got %v", p.Equation(), p.Answer(), r)
	}
}

func TestMathWrongAnswerRegenerates(t *testing.T) {
	p := NewMath(rand.New(rand.NewSource(4)))
	typeString(p, strconv.Itoa(p.Answer()+1))
	if r := p.HandleInput(Input{Key: KeyEnter}); r != ResultMistake {
		t.Errorf("Expected mistake, got %v", r)
	}
	if p.Lines()[1] != "Answer: _" {
		t.Errorf("Expected cleared input, got %q", p.Lines()[1])
	}
}

func TestMathDivisionExactOrFallback(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		p := NewMathWithOperators(rand.New(rand.NewSource(seed)), "/")
		typeString(p, strconv.Itoa(p.Answer()))
		if r := p.HandleInput(Input{Key: KeyEnter}); r != ResultSolved {
			t.Fatalf("Seed %d: expected %q = %d to be solvable", seed, p.Equation(), p.Answer())
		}
	}
}

func finishPlayback(p *ColorSequence) {
	for p.Showing() {
		p.Update(100*time.Millisecond, true)
	}
}

func TestColorSequence(t *testing.T) {
	p := NewColorSequence(rand.New(rand.NewSource(5)))
	seq := p.Sequence()

	// Input during playback is ignored
	if r := p.HandleInput(Input{Key: KeyRune, Rune: rune('1' + seq[0])}); r != ResultNone {
		t.Errorf("Expected input ignored during playback, got %v", r)
	}

	finishPlayback(p)
	var last Result
	for _, c := range seq {
		last = p.HandleInput(Input{Key: KeyRune, Rune: rune('1' + c)})
	}
	if last != ResultSolved {
		t.Errorf("Expected solved, got %v", last)
	}
}

func TestColorSequenceMistakeReplays(t *testing.T) {
	p := NewColorSequence(rand.New(rand.NewSource(6)))
	seq := p.Sequence()
	finishPlayback(p)

	wrong := (seq[0] + 1) % parameter.ColorPaletteSize
	if r := p.HandleInput(Input{Key: KeyRune, Rune: rune('1' + wrong)}); r != ResultMistake {
		t.Errorf("Expected mistake, got %v", r)
	}
	if !p.Showing() {
		t.Error("Expected playback restarted")
	}
}

func TestColorSequenceLit(t *testing.T) {
	p := NewColorSequence(rand.New(rand.NewSource(7)))
	if p.Lit() != -1 {
		t.Error("Expected nothing lit during intro")
	}
	p.Update(parameter.ColorIntroDelay, true)
	if p.Lit() != p.Sequence()[0] {
		t.Errorf("Expected first color lit, got %d", p.Lit())
	}
	p.Update(parameter.ColorShowTime, true)
	if p.Lit() != -1 {
		t.Error("Expected gap after first color")
	}
}

func TestTimedWaitCountsOnlyInRange(t *testing.T) {
	p := NewTimedWait()

	for i := 0; i < 100; i++ {
		if r := p.Update(100*time.Millisecond, false); r != ResultNone {
			t.Fatal("Expected no progress out of range")
		}
	}
	if p.Progress() != 0 {
		t.Errorf("Expected 0 progress, got %v", p.Progress())
	}

	var r Result
	for i := 0; i < 50 && r == ResultNone; i++ {
		r = p.Update(100*time.Millisecond, true)
	}
	if r != ResultSolved {
		t.Errorf("Expected solved after %v in range, got %v", parameter.WaitTimeRequired, r)
	}
}

func TestPuzzleKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	tests := []struct {
		p    Puzzle
		kind core.PuzzleKind
	}{
		{NewCodeEntry(rng), core.PuzzleCodeEntry},
		{NewMath(rng), core.PuzzleMath},
		{NewColorSequence(rng), core.PuzzleColorSequence},
		{NewTimedWait(), core.PuzzleTimedWait},
	}
	for _, tt := range tests {
		if tt.p.Kind() != tt.kind {
			t.Errorf("Expected %v, got %v", tt.kind, tt.p.Kind())
		}
		if len(tt.p.Lines()) == 0 {
			t.Errorf("%v: expected panel lines", tt.kind)
		}
	}
}
