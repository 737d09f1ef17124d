package progression

// Phase is the arbiter's position within an iteration
type Phase int

const (
	PhaseStarting Phase = iota
	PhaseRunning
	PhaseCompleted
	PhaseFailed
)

var phaseNames = [...]string{
	PhaseStarting:  "starting",
	PhaseRunning:   "running",
	PhaseCompleted: "completed",
	PhaseFailed:    "failed",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Loss causes reported with EventGameLost
const (
	CauseTimeout     = "timeout"
	CauseFired       = "fired"
	CauseMissedCalls = "missed_calls"
)
