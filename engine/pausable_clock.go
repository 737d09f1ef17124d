package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides game time that stops while paused
type PausableClock struct {
	mu sync.RWMutex

	source    TimeSource
	realStart time.Time

	isPaused        atomic.Bool
	pauseStart      time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Cumulative completed pauses
}

// NewPausableClock creates a clock over the real time source
func NewPausableClock() *PausableClock {
	return NewPausableClockWithSource(NewTimeProvider())
}

// NewPausableClockWithSource creates a clock over an arbitrary source
func NewPausableClockWithSource(source TimeSource) *PausableClock {
	return &PausableClock{
		source:    source,
		realStart: source.Now(),
	}
}

// Now returns game time: real elapsed minus paused time, frozen during a pause
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.realStart.Add(pc.pauseStart.Sub(pc.realStart) - pc.totalPausedTime)
	}
	return pc.realStart.Add(pc.source.Now().Sub(pc.realStart) - pc.totalPausedTime)
}

// RealTime returns the source time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.Load() {
		return
	}
	pc.pauseStart = pc.source.Now()
	pc.isPaused.Store(true)
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.isPaused.Load() {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
	pc.isPaused.Store(false)
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// GetTotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStart.IsZero() {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
