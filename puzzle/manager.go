package puzzle

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/interaction"
	"github.com/lixenwraith/crunch-time/parameter"
	"github.com/lixenwraith/crunch-time/status"
)

// Crediter receives the completion percent earned by a solved puzzle
type Crediter interface {
	CreditPuzzle(percent float64)
}

// Manager owns the single open puzzle and reports outcomes to its host slot
// Only one puzzle is open at a time; player movement is frozen while one is
type Manager struct {
	rng    *rand.Rand
	credit Crediter
	sink   event.Sink

	active Puzzle
	host   interaction.PuzzleHost

	statSolved   *atomic.Int64
	statMistakes *atomic.Int64
}

// NewManager creates a manager; credit may be nil
func NewManager(rng *rand.Rand, credit Crediter, sink event.Sink, reg *status.Registry) *Manager {
	if sink == nil {
		sink = event.Discard
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Manager{
		rng:          rng,
		credit:       credit,
		sink:         sink,
		statSolved:   reg.Ints.Get(status.KeyPuzzlesSolved),
		statMistakes: reg.Ints.Get(status.KeyPuzzleMistakes),
	}
}

// Name returns system's name
func (m *Manager) Name() string {
	return "puzzle"
}

// Priority returns the system's priority
func (m *Manager) Priority() int {
	return parameter.PriorityPuzzle
}

// StartPuzzle opens the host's bound puzzle, refusing while another is open
func (m *Manager) StartPuzzle(host interaction.PuzzleHost) bool {
	if m.active != nil {
		return false
	}
	p := m.build(host.Puzzle())
	if p == nil {
		return false
	}

	m.active = p
	m.host = host
	logrus.WithFields(logrus.Fields{"slot": host.ID(), "puzzle": p.Kind()}).Debug("puzzle started")
	m.sink.Emit(event.EventPuzzleStarted, &event.PuzzlePayload{Slot: host.ID(), Kind: p.Kind()})
	return true
}

func (m *Manager) build(kind core.PuzzleKind) Puzzle {
	switch kind {
	case core.PuzzleCodeEntry:
		return NewCodeEntry(m.rng)
	case core.PuzzleMath:
		return NewMath(m.rng)
	case core.PuzzleColorSequence:
		return NewColorSequence(m.rng)
	case core.PuzzleTimedWait:
		return NewTimedWait()
	default:
		return nil
	}
}

// HandleInput routes a key to the open puzzle, reporting whether it was consumed
// Escape abandons the puzzle
func (m *Manager) HandleInput(in Input) bool {
	if m.active == nil {
		return false
	}
	if in.Key == KeyEscape {
		m.Close()
		return true
	}
	m.resolve(m.active.HandleInput(in))
	return true
}

// Update advances timed puzzles
func (m *Manager) Update(dt time.Duration) {
	if m.active == nil {
		return
	}
	m.resolve(m.active.Update(dt, m.host.IsPlayerInRange()))
}

func (m *Manager) resolve(r Result) {
	switch r {
	case ResultSolved:
		m.solve()
	case ResultMistake:
		m.statMistakes.Add(1)
		m.sink.Emit(event.EventPuzzleMistake, &event.PuzzlePayload{Slot: m.host.ID(), Kind: m.active.Kind()})
		m.sink.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundError})
	}
}

// solve credits the completion bar, closes the puzzle and hands control back to the slot
// The manager slot earns no credit; its reward is clearing the missed call streak
func (m *Manager) solve() {
	host, kind := m.host, m.active.Kind()

	credit := 0.0
	if host.Task() != core.TaskManager {
		credit = m.CreditRoll()
		if m.credit != nil {
			m.credit.CreditPuzzle(credit)
		}
	}
	m.statSolved.Add(1)
	m.sink.Emit(event.EventPuzzleSolved, &event.PuzzlePayload{Slot: host.ID(), Kind: kind, Credit: credit})

	m.active, m.host = nil, nil
	m.sink.Emit(event.EventPuzzleClosed, &event.PuzzlePayload{Slot: host.ID(), Kind: kind})
	host.OnPuzzleCompleted()
}

// CreditRoll draws base + jitter percent, jitter uniform over [min, max)
func (m *Manager) CreditRoll() float64 {
	span := parameter.PuzzleCreditJitterMax - parameter.PuzzleCreditJitterMin
	return float64(parameter.PuzzleCreditBase + parameter.PuzzleCreditJitterMin + m.rng.Intn(span))
}

// Close abandons the open puzzle
func (m *Manager) Close() {
	if m.active == nil {
		return
	}
	host, kind := m.host, m.active.Kind()
	m.active, m.host = nil, nil
	m.sink.Emit(event.EventPuzzleClosed, &event.PuzzlePayload{Slot: host.ID(), Kind: kind})
	host.OnPuzzleClosed()
}

// Active reports an open puzzle
func (m *Manager) Active() bool { return m.active != nil }

// Current returns the open puzzle, nil when none
func (m *Manager) Current() Puzzle { return m.active }

// HostID returns the slot of the open puzzle, empty when none
func (m *Manager) HostID() string {
	if m.host == nil {
		return ""
	}
	return m.host.ID()
}
