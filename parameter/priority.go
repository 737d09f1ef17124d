package parameter

// System Execution Priorities (lower runs first)
// Order per tick: puzzles (input side) -> tracks -> slots -> manager calls -> arbiter
const (
	PriorityPuzzle      = 10
	PriorityDepletion   = 20
	PriorityCompletion  = 25
	PriorityCat         = 30
	PrioritySlot        = 40
	PriorityManager     = 60
	PriorityArbiter     = 80
	PriorityDiagnostics = 1000 // After all others, telemetry collection
)
