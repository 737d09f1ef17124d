package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/crunch-time/parameter"
)

// StepSource is a TimeSource that moves only when advanced
// Drives a PausableClock deterministically in tests and replays
type StepSource struct {
	origin time.Time
	offset atomic.Int64 // nanoseconds past origin
}

func NewStepSource(origin time.Time) *StepSource {
	return &StepSource{origin: origin}
}

func (s *StepSource) Now() time.Time {
	return s.origin.Add(time.Duration(s.offset.Load()))
}

func (s *StepSource) Advance(d time.Duration) {
	s.offset.Add(int64(d))
}

// Ticks advances by n game ticks
func (s *StepSource) Ticks(n int) {
	s.Advance(time.Duration(n) * parameter.GameUpdateInterval)
}
