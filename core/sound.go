package core

// SoundType represents different sound cues
type SoundType int

const (
	SoundInteract SoundType = iota // Slot interaction accepted
	SoundSuccess                   // Puzzle solved
	SoundError                     // Wrong puzzle input
	SoundRing                      // Manager call ringing
	SoundLose                      // Session lost
	SoundMeow                      // Office cat startled
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundInteract: "interact",
	SoundSuccess:  "success",
	SoundError:    "error",
	SoundRing:     "ring",
	SoundLose:     "lose",
	SoundMeow:     "meow",
}

// String returns the cue name used in config and logs
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
