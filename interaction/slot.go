// Package interaction tracks per-object availability: highlight, player range,
// cooldown and the puzzle each object opens.
package interaction

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/parameter"
	"github.com/lixenwraith/crunch-time/task"
)

// PuzzleHost is the slot side of a running puzzle, called back when it ends
type PuzzleHost interface {
	ID() string
	Puzzle() core.PuzzleKind
	Task() core.TaskKind
	IsPlayerInRange() bool
	OnPuzzleCompleted()
	OnPuzzleClosed()
}

// PuzzleStarter opens the minigame bound to a slot, false when it cannot open
type PuzzleStarter interface {
	StartPuzzle(host PuzzleHost) bool
}

// ConsultHandler is told when the manager slot's puzzle is solved
type ConsultHandler interface {
	OnManagerConsulted()
}

// Config is the static description of a slot
type Config struct {
	ID              string
	Puzzle          core.PuzzleKind
	Task            core.TaskKind
	Cooldown        time.Duration
	Prompt          string
	StartOnCooldown bool
	Disabled        bool
}

// Slot is the interactive state of one scene object
type Slot struct {
	cfg Config

	enabled       bool
	highlighted   bool
	playerInRange bool
	cooldown      time.Duration

	puzzles PuzzleStarter
	ledger  *task.Ledger
	call    *task.ManagerTask
	consult ConsultHandler
	sink    event.Sink
	log     *logrus.Entry
}

// Deps are the collaborators a slot calls into; any may be nil
type Deps struct {
	Puzzles PuzzleStarter
	Ledger  *task.Ledger
	Call    *task.ManagerTask
	Consult ConsultHandler
	Sink    event.Sink
}

// NewSlot creates a slot; a manager slot with a ManagerTask binds itself as the call's owner
func NewSlot(cfg Config, deps Deps) *Slot {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = parameter.SlotDefaultCooldown
		if cfg.Task == core.TaskManager {
			cfg.Cooldown = parameter.ManagerSlotDefaultCooldown
		}
	}
	if cfg.Prompt == "" {
		cfg.Prompt = parameter.SlotDefaultPrompt
	}
	if deps.Sink == nil {
		deps.Sink = event.Discard
	}

	s := &Slot{
		cfg:     cfg,
		enabled: !cfg.Disabled,
		puzzles: deps.Puzzles,
		ledger:  deps.Ledger,
		consult: deps.Consult,
		sink:    deps.Sink,
		log:     logrus.WithField("slot", cfg.ID),
	}
	if cfg.Task == core.TaskManager && deps.Call != nil {
		s.call = deps.Call
		s.call.Bind(s)
	}
	return s
}

// Name returns system's name
func (s *Slot) Name() string {
	return "slot:" + s.cfg.ID
}

// Priority returns the system's priority
func (s *Slot) Priority() int {
	return parameter.PrioritySlot
}

// Start puts the slot into its initial state for a session
func (s *Slot) Start() {
	if s.cfg.StartOnCooldown {
		s.StartCooldown()
		return
	}
	s.EndCooldown()
}

// TryInteract opens the bound puzzle and starts cooldown when the slot is available
// Returns false when gated or when the puzzle refuses to open
func (s *Slot) TryInteract() bool {
	if !s.enabled || !s.playerInRange || s.cooldown > 0 {
		return false
	}
	if s.cfg.Puzzle == core.PuzzleNone || s.puzzles == nil {
		return false
	}
	if !s.puzzles.StartPuzzle(s) {
		return false
	}

	s.sink.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundInteract})
	s.log.Debugf("interact, puzzle %s", s.cfg.Puzzle)
	s.StartCooldown()
	return true
}

// StartCooldown restarts the full cooldown, hides the prompt and withdraws the slot's task
func (s *Slot) StartCooldown() {
	s.cooldown = s.cfg.Cooldown
	s.setHighlight(false)
	s.sink.Emit(event.EventPromptHide, &event.SlotPayload{Slot: s.cfg.ID})

	if s.call != nil {
		s.call.Cancel()
	}
	if s.ledger != nil {
		if label := s.cfg.Task.Label(); label != "" {
			s.ledger.RemoveTask(label)
		}
	}

	s.sink.Emit(event.EventCooldownStarted, &event.CooldownPayload{Slot: s.cfg.ID, Duration: s.cfg.Cooldown})
}

// EndCooldown makes the slot available and re-posts its task
// The manager slot also starts a fresh call countdown and rings
func (s *Slot) EndCooldown() {
	s.cooldown = 0
	s.setHighlight(true)
	s.syncPrompt()

	if s.ledger != nil {
		if label := s.cfg.Task.Label(); label != "" {
			s.ledger.AddTask(label)
		}
	}
	if s.call != nil {
		s.call.Start(parameter.ManagerCallDuration)
		s.sink.Emit(event.EventRingAlert, &event.SlotPayload{Slot: s.cfg.ID})
		s.sink.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundRing})
	}

	s.sink.Emit(event.EventCooldownEnded, &event.SlotPayload{Slot: s.cfg.ID})
}

// Update counts the cooldown down, ending it exactly once
func (s *Slot) Update(dt time.Duration) {
	if s.cooldown <= 0 {
		return
	}
	s.cooldown -= dt
	if s.cooldown <= 0 {
		s.EndCooldown()
	}
}

// OnPuzzleCompleted restarts cooldown from the moment the puzzle is solved
func (s *Slot) OnPuzzleCompleted() {
	s.StartCooldown()
	s.sink.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundSuccess})
	if s.cfg.Task == core.TaskManager && s.consult != nil {
		s.consult.OnManagerConsulted()
	}
}

// OnPuzzleClosed leaves cooldown as it is
func (s *Slot) OnPuzzleClosed() {}

// SetPlayerInRange is the trigger enter/exit signal
func (s *Slot) SetPlayerInRange(in bool) {
	if s.playerInRange == in {
		return
	}
	s.playerInRange = in
	s.sink.Emit(event.EventRangeChanged, &event.RangePayload{Slot: s.cfg.ID, InRange: in})
	s.syncPrompt()
}

// SetEnabled toggles whether the slot accepts interaction at all
func (s *Slot) SetEnabled(enabled bool) {
	s.enabled = enabled
	s.syncPrompt()
}

// SetPrompt replaces the interaction prompt text
func (s *Slot) SetPrompt(text string) {
	s.cfg.Prompt = text
	s.syncPrompt()
}

func (s *Slot) setHighlight(on bool) {
	if s.highlighted == on {
		return
	}
	s.highlighted = on
	s.sink.Emit(event.EventHighlightChanged, &event.HighlightPayload{Slot: s.cfg.ID, Highlighted: on})
}

// syncPrompt shows the prompt only while highlighted, enabled and in range
func (s *Slot) syncPrompt() {
	if s.PromptVisible() {
		s.sink.Emit(event.EventPromptShow, &event.PromptPayload{Slot: s.cfg.ID, Text: s.cfg.Prompt})
		return
	}
	s.sink.Emit(event.EventPromptHide, &event.SlotPayload{Slot: s.cfg.ID})
}

// PromptVisible reports whether the prompt should be on screen
func (s *Slot) PromptVisible() bool {
	return s.enabled && s.highlighted && s.playerInRange
}

// ID returns the slot identifier
func (s *Slot) ID() string { return s.cfg.ID }

// Puzzle returns the bound puzzle kind
func (s *Slot) Puzzle() core.PuzzleKind { return s.cfg.Puzzle }

// Task returns the slot's task kind
func (s *Slot) Task() core.TaskKind { return s.cfg.Task }

// Prompt returns the prompt text
func (s *Slot) Prompt() string { return s.cfg.Prompt }

// IsEnabled reports whether the slot accepts interaction
func (s *Slot) IsEnabled() bool { return s.enabled }

// IsHighlighted reports the highlight pulse state
func (s *Slot) IsHighlighted() bool { return s.highlighted }

// IsPlayerInRange reports the trigger state
func (s *Slot) IsPlayerInRange() bool { return s.playerInRange }

// IsOnCooldown reports a running cooldown
func (s *Slot) IsOnCooldown() bool { return s.cooldown > 0 }

// CooldownTimeLeft returns the remaining cooldown, zero when available
func (s *Slot) CooldownTimeLeft() time.Duration {
	if s.cooldown < 0 {
		return 0
	}
	return s.cooldown
}

// CooldownProgress returns the elapsed fraction of the cooldown, 1 when available
func (s *Slot) CooldownProgress() float64 {
	if s.cooldown <= 0 {
		return 1
	}
	return 1 - float64(s.cooldown)/float64(s.cfg.Cooldown)
}

// CooldownDuration returns the configured cooldown
func (s *Slot) CooldownDuration() time.Duration { return s.cfg.Cooldown }

// Call returns the manager countdown hosted by this slot, nil for ordinary slots
func (s *Slot) Call() *task.ManagerTask { return s.call }
