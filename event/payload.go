package event

import (
	"time"

	"github.com/lixenwraith/crunch-time/core"
)

// SoundRequestPayload requests playback of a cue
type SoundRequestPayload struct {
	Sound core.SoundType `json:"sound"`
}

// ProgressPayload carries a track value
type ProgressPayload struct {
	Track string  `json:"track"`
	Value float64 `json:"value"`
}

// SlotPayload identifies a slot
type SlotPayload struct {
	Slot string `json:"slot"`
}

// PromptPayload carries prompt text for a slot
type PromptPayload struct {
	Slot string `json:"slot"`
	Text string `json:"text"`
}

// HighlightPayload carries a slot highlight toggle
type HighlightPayload struct {
	Slot        string `json:"slot"`
	Highlighted bool   `json:"highlighted"`
}

// RangePayload carries the player-in-range flag for a slot
type RangePayload struct {
	Slot    string `json:"slot"`
	InRange bool   `json:"in_range"`
}

// CooldownPayload carries a started cooldown
type CooldownPayload struct {
	Slot     string        `json:"slot"`
	Duration time.Duration `json:"duration"`
}

// TaskPayload carries a ledger entry change
type TaskPayload struct {
	Label     string        `json:"label"`
	Blinking  bool          `json:"blinking,omitempty"`
	Remaining time.Duration `json:"remaining,omitempty"`
}

// ManagerCallPayload carries a manager call state change
type ManagerCallPayload struct {
	Slot      string        `json:"slot"`
	Remaining time.Duration `json:"remaining"`
}

// IterationPayload carries arbiter counters at an iteration boundary
type IterationPayload struct {
	GameCount     int     `json:"game_count"`
	SuccessCount  int     `json:"success_count"`
	DepletionRate float64 `json:"depletion_rate,omitempty"`
	Completion    float64 `json:"completion,omitempty"`
	Draw          float64 `json:"draw,omitempty"`
}

// GameLostPayload carries the terminal outcome
type GameLostPayload struct {
	Cause        string  `json:"cause"`
	GameCount    int     `json:"game_count"`
	SuccessCount int     `json:"success_count"`
	Completion   float64 `json:"completion"`
}

// SceneLoadPayload names the scene to transition to
type SceneLoadPayload struct {
	Scene core.Scene `json:"scene"`
}

// PuzzlePayload carries a puzzle lifecycle change
type PuzzlePayload struct {
	Slot   string          `json:"slot"`
	Kind   core.PuzzleKind `json:"kind"`
	Credit float64         `json:"credit,omitempty"`
}

// PausePayload carries the pause state
type PausePayload struct {
	Paused bool `json:"paused"`
}

// CatPayload carries the cat's cell and rest state
type CatPayload struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	State string `json:"state"`
}
