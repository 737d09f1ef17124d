package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// === Audio Event ===

	// EventSoundRequest requests a fire-and-forget audio cue
	// Trigger: Slots, puzzles, arbiter | Consumer: audio.Handler | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Progress Event ===

	// EventProgressChanged reports a new track value after an animation step
	// Trigger: progress.Track | Consumer: HUD, spectators | Payload: *ProgressPayload
	EventProgressChanged

	// EventProgressCompleted reports a finished track animation
	// Trigger: progress.Track | Consumer: HUD | Payload: *ProgressPayload
	EventProgressCompleted

	// === Slot Event ===

	// EventPromptShow shows the interaction prompt above a slot
	// Trigger: interaction.Slot | Consumer: HUD | Payload: *PromptPayload
	EventPromptShow

	// EventPromptHide hides a slot's interaction prompt
	// Trigger: interaction.Slot | Consumer: HUD | Payload: *SlotPayload
	EventPromptHide

	// EventHighlightChanged toggles a slot's highlight pulse
	// Trigger: interaction.Slot | Consumer: HUD | Payload: *HighlightPayload
	EventHighlightChanged

	// EventRangeChanged reports the player entering or leaving a slot trigger
	// Trigger: interaction.Slot | Consumer: HUD | Payload: *RangePayload
	EventRangeChanged

	// EventCooldownStarted signals a slot entering cooldown
	// Trigger: interaction.Slot | Consumer: HUD, metrics | Payload: *CooldownPayload
	EventCooldownStarted

	// EventCooldownEnded signals a slot becoming interactable again
	// Trigger: interaction.Slot | Consumer: HUD | Payload: *SlotPayload
	EventCooldownEnded

	// EventRingAlert signals the manager phone ringing
	// Trigger: manager slot EndCooldown | Consumer: HUD, audio | Payload: *SlotPayload
	EventRingAlert

	// === Ledger Event ===

	// EventTaskAdded signals a new ledger entry
	// Trigger: task.Ledger | Consumer: HUD | Payload: *TaskPayload
	EventTaskAdded

	// EventTaskRemoved signals a removed ledger entry
	// Trigger: task.Ledger | Consumer: HUD | Payload: *TaskPayload
	EventTaskRemoved

	// EventTaskCountdown carries the manager countdown for ledger display
	// Trigger: task.ManagerTask via task.Ledger | Consumer: HUD | Payload: *TaskPayload
	EventTaskCountdown

	// === Manager Event ===

	// EventManagerCallStarted signals a fresh manager countdown
	// Trigger: task.ManagerTask | Consumer: HUD | Payload: *ManagerCallPayload
	EventManagerCallStarted

	// EventManagerCallCancelled signals a countdown cancelled before expiry
	// Trigger: task.ManagerTask | Consumer: HUD | Payload: *ManagerCallPayload
	EventManagerCallCancelled

	// EventManagerCallMissed signals an expired manager countdown
	// Trigger: task.ManagerTask | Consumer: HUD, metrics | Payload: *ManagerCallPayload
	EventManagerCallMissed

	// === Progression Event ===

	// EventIterationStarted signals a new iteration entering Running
	// Trigger: progression.Arbiter | Consumer: HUD, spectators | Payload: *IterationPayload
	EventIterationStarted

	// EventIterationCompleted signals the completion bar filling before time-out
	// Trigger: progression.Arbiter | Consumer: HUD, audio | Payload: *IterationPayload
	EventIterationCompleted

	// EventIterationSalvaged signals a time-out that survived the fired draw
	// Trigger: progression.Arbiter | Consumer: HUD | Payload: *IterationPayload
	EventIterationSalvaged

	// EventGameLost signals the terminal loss of the session
	// Trigger: progression.Arbiter | Consumer: scoreboard, HUD | Payload: *GameLostPayload
	EventGameLost

	// EventSceneLoad requests an external scene transition
	// Trigger: progression.Arbiter | Consumer: main loop | Payload: *SceneLoadPayload
	EventSceneLoad

	// === Puzzle Event ===

	// EventPuzzleStarted signals a minigame opening for a slot
	// Trigger: puzzle.Manager | Consumer: HUD, input routing | Payload: *PuzzlePayload
	EventPuzzleStarted

	// EventPuzzleSolved signals a solved minigame
	// Trigger: puzzle.Manager | Consumer: HUD | Payload: *PuzzlePayload
	EventPuzzleSolved

	// EventPuzzleMistake signals a wrong answer, the puzzle stays open
	// Trigger: puzzle.Manager | Consumer: HUD | Payload: *PuzzlePayload
	EventPuzzleMistake

	// EventPuzzleClosed signals a minigame closing, solved or abandoned
	// Trigger: puzzle.Manager | Consumer: HUD, input routing | Payload: *PuzzlePayload
	EventPuzzleClosed

	// === Scene Event ===

	// EventCatScared signals the player bumping into the office cat
	// Trigger: scene.Cat | Consumer: spectators | Payload: *CatPayload
	EventCatScared

	// === Meta Event ===

	// EventGamePaused toggles the clock scheduler pause
	// Trigger: input | Consumer: HUD | Payload: *PausePayload
	EventGamePaused

	eventTypeCount
)

// GameEvent is a single notification flowing from core components to the presentation layer
type GameEvent struct {
	Type    EventType
	Payload any
}
