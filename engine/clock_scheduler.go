package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/core"
)

// ClockScheduler drives a session on a fixed tick in its own goroutine
// Ticks use pausable game time with drift correction; the render loop is told after each tick
type ClockScheduler struct {
	session       *Session
	pausableClock *PausableClock

	tickInterval     time.Duration
	nextTickDeadline time.Time
	tickCount        atomic.Uint64
	mu               sync.RWMutex

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Non-blocking signal that a tick completed
	updateDone chan struct{}
}

// NewClockScheduler creates a scheduler and returns it with the tick-done channel
func NewClockScheduler(session *Session, pausableClock *PausableClock, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)
	cs := &ClockScheduler{
		session:       session,
		pausableClock: pausableClock,
		tickInterval:  tickInterval,
		stopChan:      make(chan struct{}),
		updateDone:    updateDone,
	}
	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TogglePause flips the pause state and returns the new one
func (cs *ClockScheduler) TogglePause() bool {
	paused := !cs.pausableClock.IsPaused()
	cs.SetPaused(paused)
	return paused
}

// SetPaused pauses or resumes game time
func (cs *ClockScheduler) SetPaused(paused bool) {
	if paused == cs.pausableClock.IsPaused() {
		return
	}
	if paused {
		cs.pausableClock.Pause()
	} else {
		cs.pausableClock.Resume()
		// Skip the ticks that would have run during the pause
		cs.mu.Lock()
		cs.nextTickDeadline = cs.pausableClock.Now().Add(cs.tickInterval)
		cs.mu.Unlock()
	}
	cs.session.SetPaused(paused)
	logrus.WithField("paused", paused).Debug("pause toggled")
}

// IsPaused reports whether game time is stopped
func (cs *ClockScheduler) IsPaused() bool {
	return cs.pausableClock.IsPaused()
}

// TickCount returns ticks processed since Start
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.pausableClock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.pausableClock.IsPaused() {
			// Longer sleep while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			gameNow := cs.pausableClock.Now()

			cs.mu.RLock()
			deadline := cs.nextTickDeadline
			cs.mu.RUnlock()

			if !gameNow.Before(deadline) {
				cs.processTick()

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				// Drop missed ticks instead of bursting to catch up
				if gameNow.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				select {
				case cs.updateDone <- struct{}{}:
				default:
				}

				sleepDuration = deadline.Sub(cs.pausableClock.Now())
			} else {
				sleepDuration = deadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}

// processTick advances the session by exactly one fixed step
func (cs *ClockScheduler) processTick() {
	if cs.pausableClock.IsPaused() {
		return
	}
	cs.session.Update(cs.tickInterval)
	cs.tickCount.Add(1)
}
