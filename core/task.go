package core

import "strings"

// TaskKind tags a slot with the ledger entry it produces
type TaskKind int

const (
	TaskNone TaskKind = iota
	TaskCombatAI
	TaskGraphics
	TaskGameDev
	TaskManager
)

// Fixed ledger labels, one per task kind
const (
	LabelCombatAI = "Train combat AI"
	LabelGraphics = "Polish graphics"
	LabelGameDev  = "Build game"
	LabelManager  = "Consult with Manager"
)

var taskKeys = map[TaskKind]string{
	TaskNone:     "none",
	TaskCombatAI: "combat_ai",
	TaskGraphics: "graphics",
	TaskGameDev:  "gamedev",
	TaskManager:  "manager",
}

func (k TaskKind) String() string {
	if key, ok := taskKeys[k]; ok {
		return key
	}
	return "unknown"
}

// Label returns the fixed ledger label for the kind, empty for TaskNone
func (k TaskKind) Label() string {
	switch k {
	case TaskCombatAI:
		return LabelCombatAI
	case TaskGraphics:
		return LabelGraphics
	case TaskGameDev:
		return LabelGameDev
	case TaskManager:
		return LabelManager
	default:
		return ""
	}
}

// ParseTaskKind maps a scene-file key to a TaskKind
// Empty string is TaskNone
func ParseTaskKind(key string) (TaskKind, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return TaskNone, true
	}
	for kind, k := range taskKeys {
		if k == key {
			return kind, true
		}
	}
	return TaskNone, false
}
