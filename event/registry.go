package event

import "strings"

var typeToName = map[EventType]string{
	EventSoundRequest:         "SoundRequest",
	EventProgressChanged:      "ProgressChanged",
	EventProgressCompleted:    "ProgressCompleted",
	EventPromptShow:           "PromptShow",
	EventPromptHide:           "PromptHide",
	EventHighlightChanged:     "HighlightChanged",
	EventRangeChanged:         "RangeChanged",
	EventCooldownStarted:      "CooldownStarted",
	EventCooldownEnded:        "CooldownEnded",
	EventRingAlert:            "RingAlert",
	EventTaskAdded:            "TaskAdded",
	EventTaskRemoved:          "TaskRemoved",
	EventTaskCountdown:        "TaskCountdown",
	EventManagerCallStarted:   "ManagerCallStarted",
	EventManagerCallCancelled: "ManagerCallCancelled",
	EventManagerCallMissed:    "ManagerCallMissed",
	EventIterationStarted:     "IterationStarted",
	EventIterationCompleted:   "IterationCompleted",
	EventIterationSalvaged:    "IterationSalvaged",
	EventGameLost:             "GameLost",
	EventSceneLoad:            "SceneLoad",
	EventPuzzleStarted:        "PuzzleStarted",
	EventPuzzleSolved:         "PuzzleSolved",
	EventPuzzleMistake:        "PuzzleMistake",
	EventPuzzleClosed:         "PuzzleClosed",
	EventCatScared:            "CatScared",
	EventGamePaused:           "GamePaused",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for t, n := range typeToName {
		m[strings.ToLower(n)] = t
	}
	return m
}()

// String returns the registered event name
func (t EventType) String() string {
	if n, ok := typeToName[t]; ok {
		return n
	}
	return "Unknown"
}

// GetEventType returns the EventType for a case-insensitive name
func GetEventType(name string) (EventType, bool) {
	t, ok := nameToType[strings.ToLower(name)]
	return t, ok
}
