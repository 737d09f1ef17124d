package parameter

import "time"

// Progress Tracks
const (
	// DepletionDefaultSpeed is the time bar default lerp speed
	DepletionDefaultSpeed = 1.0

	// CompletionDefaultSpeed is the completion bar default lerp speed
	CompletionDefaultSpeed = 1.0

	// CompletionCreditSpeed animates puzzle credit onto the completion bar
	CompletionCreditSpeed = 20.0
)

// Iteration Difficulty
// Depletion rate = DepletionBaseRate + successCount * DepletionRateIncrement (parametric units per second)
const (
	// DepletionBaseRate drains a full time bar in 90s
	DepletionBaseRate = 1.0 / 90.0

	// DepletionRateIncrement shortens each following iteration
	DepletionRateIncrement = DepletionBaseRate / 10.0
)

// Arbitration
const (
	// UnconditionalLossThreshold is the completion at or below which a time-out always loses
	UnconditionalLossThreshold = 0.5

	// MissedCallLimit consecutive missed manager calls end the session
	MissedCallLimit = 2

	// MissedCallPenalty is subtracted from the completion bar on a tolerated miss
	MissedCallPenalty = 0.1

	// MissedCallPenaltySpeed is the fast lerp speed for the penalty nudge
	MissedCallPenaltySpeed = 20.0
)

// Puzzle Credit
const (
	// PuzzleCreditBase is the percent credited to the completion bar per solved puzzle
	PuzzleCreditBase = 20

	// PuzzleCreditJitterMin and PuzzleCreditJitterMax bound the integer jitter [min, max)
	PuzzleCreditJitterMin = -7
	PuzzleCreditJitterMax = 7
)

// Manager Call
const (
	// ManagerCallDuration is how long the manager waits before the call counts as missed
	ManagerCallDuration = 10 * time.Second
)
