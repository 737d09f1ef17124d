package core

import "strings"

// PuzzleKind identifies the minigame bound to a slot
type PuzzleKind int

const (
	PuzzleNone PuzzleKind = iota
	PuzzleCodeEntry
	PuzzleMath
	PuzzleColorSequence
	PuzzleTimedWait
)

var puzzleNames = map[PuzzleKind]string{
	PuzzleNone:          "none",
	PuzzleCodeEntry:     "code",
	PuzzleMath:          "math",
	PuzzleColorSequence: "color",
	PuzzleTimedWait:     "wait",
}

func (p PuzzleKind) String() string {
	if name, ok := puzzleNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePuzzleKind maps a scene-file name to a PuzzleKind
// Empty string is PuzzleNone
func ParsePuzzleKind(name string) (PuzzleKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return PuzzleNone, true
	}
	for kind, n := range puzzleNames {
		if n == name {
			return kind, true
		}
	}
	return PuzzleNone, false
}
