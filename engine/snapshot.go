package engine

import (
	"time"

	"github.com/lixenwraith/crunch-time/core"
)

// Snapshot is a read-only copy of session state for the HUD and spectators
type Snapshot struct {
	SessionID string        `json:"session_id"`
	Tick      uint64        `json:"tick"`
	Elapsed   time.Duration `json:"elapsed"`
	Paused    bool          `json:"paused"`

	Phase         string  `json:"phase"`
	GameCount     int     `json:"game_count"`
	SuccessCount  int     `json:"success_count"`
	MissedCalls   int     `json:"missed_calls"`
	DepletionRate float64 `json:"depletion_rate"`
	Depletion     float64 `json:"depletion"`
	Completion    float64 `json:"completion"`
	Lost          bool    `json:"lost"`
	LossCause     string  `json:"loss_cause,omitempty"`

	Tasks []TaskView `json:"tasks"`
	Slots []SlotView `json:"slots"`

	SceneName string      `json:"scene"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Walls     []core.Area `json:"walls,omitempty"`
	Player    core.Point  `json:"player"`
	Cat       *CatView    `json:"cat,omitempty"`

	Puzzle *PuzzleView `json:"puzzle,omitempty"`
}

// TaskView is a ledger entry
type TaskView struct {
	Label     string        `json:"label"`
	Blinking  bool          `json:"blinking,omitempty"`
	Remaining time.Duration `json:"remaining,omitempty"`
}

// SlotView is a slot's visible state
type SlotView struct {
	ID               string        `json:"id"`
	Label            string        `json:"label"`
	Glyph            rune          `json:"glyph"`
	Task             core.TaskKind `json:"task"`
	Area             core.Area     `json:"area"`
	Highlighted      bool          `json:"highlighted"`
	InRange          bool          `json:"in_range"`
	OnCooldown       bool          `json:"on_cooldown"`
	CooldownLeft     time.Duration `json:"cooldown_left,omitempty"`
	CooldownProgress float64       `json:"cooldown_progress"`
	Prompt           string        `json:"prompt,omitempty"`
}

// CatView is the office cat's cell and activity
type CatView struct {
	Pos   core.Point `json:"pos"`
	State string     `json:"state"`
}

// PuzzleView is the open puzzle panel
type PuzzleView struct {
	Slot  string          `json:"slot"`
	Kind  core.PuzzleKind `json:"kind"`
	Lines []string        `json:"lines"`
}

// Snapshot copies the current state under the update lock
func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	s.World.RunSafe(func() {
		snap = s.snapshotLocked()
	})
	return snap
}

func (s *Session) snapshotLocked() Snapshot {
	w, h := s.Room.Size()
	snap := Snapshot{
		SessionID:     s.ID.String(),
		Tick:          s.diag.ticks,
		Elapsed:       s.diag.elapsed,
		Paused:        s.diag.paused.Load(),
		Phase:         s.Arbiter.Phase().String(),
		GameCount:     s.Arbiter.GameCount(),
		SuccessCount:  s.Arbiter.SuccessCount(),
		MissedCalls:   s.Arbiter.MissedCallCount(),
		DepletionRate: s.Arbiter.DepletionRate(),
		Depletion:     s.Depletion.GetProgress(),
		Completion:    s.Completion.GetProgress(),
		Lost:          s.Arbiter.Lost(),
		LossCause:     s.Arbiter.LossCause(),
		SceneName:     s.Room.Name(),
		Width:         w,
		Height:        h,
		Walls:         s.Room.Walls(),
		Player:        s.Room.Player(),
	}

	for _, e := range s.Ledger.GetEntries() {
		snap.Tasks = append(snap.Tasks, TaskView{Label: e.Label, Blinking: e.Blinking, Remaining: e.Countdown})
	}

	for i, obj := range s.Room.Objects() {
		slot := s.slots[i]
		view := SlotView{
			ID:               obj.ID,
			Label:            obj.Label,
			Glyph:            obj.Glyph,
			Task:             slot.Task(),
			Area:             obj.Area,
			Highlighted:      slot.IsHighlighted(),
			InRange:          slot.IsPlayerInRange(),
			OnCooldown:       slot.IsOnCooldown(),
			CooldownLeft:     slot.CooldownTimeLeft(),
			CooldownProgress: slot.CooldownProgress(),
		}
		if slot.PromptVisible() {
			view.Prompt = slot.Prompt()
		}
		snap.Slots = append(snap.Slots, view)
	}

	if cat := s.Room.Cat(); cat != nil {
		snap.Cat = &CatView{Pos: cat.Pos(), State: cat.State().String()}
	}

	if p := s.Puzzles.Current(); p != nil {
		snap.Puzzle = &PuzzleView{Slot: s.Puzzles.HostID(), Kind: p.Kind(), Lines: p.Lines()}
	}
	return snap
}
