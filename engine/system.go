package engine

import "time"

// System is a component advanced once per tick
type System interface {
	// Name identifies the system in logs and diagnostics
	Name() string
	// Priority orders systems within a tick, lower values run first
	Priority() int
	// Update advances the system by the fixed tick delta
	Update(dt time.Duration)
}
