// Package progression runs the iteration loop: time bar against completion bar,
// the fired draw on time-out, and missed manager call escalation.
package progression

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/parameter"
	"github.com/lixenwraith/crunch-time/progress"
	"github.com/lixenwraith/crunch-time/status"
)

// Random is the uniform source for the fired draw, *math/rand.Rand satisfies it
// Float64 must return values in [0,1)
type Random interface {
	Float64() float64
}

// Arbiter owns both tracks and decides each iteration's outcome
// The tracks tick as their own systems; the arbiter only writes them through its entry points
type Arbiter struct {
	depletion  *progress.Track
	completion *progress.Track
	rng        Random
	sink       event.Sink

	phase           Phase
	gameCount       int
	successCount    int
	missedCallCount int
	depletionRate   float64
	lossCause       string
	lastDraw        float64

	statPhase      *status.AtomicString
	statGames      *atomic.Int64
	statSuccesses  *atomic.Int64
	statMissed     *atomic.Int64
	statRate       *status.AtomicFloat
	statDepletion  *status.AtomicFloat
	statCompletion *status.AtomicFloat
	statLoss       *status.AtomicString
}

// NewArbiter creates an arbiter in PhaseStarting; call StartIteration to begin
func NewArbiter(depletion, completion *progress.Track, rng Random, sink event.Sink, reg *status.Registry) *Arbiter {
	if sink == nil {
		sink = event.Discard
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Arbiter{
		depletion:      depletion,
		completion:     completion,
		rng:            rng,
		sink:           sink,
		statPhase:      reg.Strings.Get(status.KeyPhase),
		statGames:      reg.Ints.Get(status.KeyGameCount),
		statSuccesses:  reg.Ints.Get(status.KeySuccessCount),
		statMissed:     reg.Ints.Get(status.KeyMissedCalls),
		statRate:       reg.Floats.Get(status.KeyDepletionRate),
		statDepletion:  reg.Floats.Get(status.KeyDepletion),
		statCompletion: reg.Floats.Get(status.KeyCompletion),
		statLoss:       reg.Strings.Get(status.KeyLastLossCause),
	}
}

// Name returns system's name
func (a *Arbiter) Name() string {
	return "arbiter"
}

// Priority returns the system's priority
func (a *Arbiter) Priority() int {
	return parameter.PriorityArbiter
}

// StartIteration refills the time bar at the current difficulty and empties the completion bar
func (a *Arbiter) StartIteration() {
	if a.phase == PhaseFailed {
		return
	}
	a.setPhase(PhaseStarting)

	a.depletionRate = parameter.DepletionBaseRate + float64(a.successCount)*parameter.DepletionRateIncrement
	a.depletion.SetInstantToOne()
	a.depletion.SetProgress(0, a.depletionRate)
	a.completion.SetInstant(0)
	a.missedCallCount = 0

	a.setPhase(PhaseRunning)
	a.publish()

	logrus.WithFields(logrus.Fields{
		"game":    a.gameCount,
		"success": a.successCount,
		"rate":    a.depletionRate,
	}).Info("iteration started")
	a.sink.Emit(event.EventIterationStarted, a.iterationPayload())
}

// Update runs both checks, completion first so a bar filling on the time-out tick still wins
func (a *Arbiter) Update(dt time.Duration) {
	if a.phase != PhaseRunning {
		return
	}
	if !a.CheckCompletion() {
		a.CheckDepletion()
	}
	a.publish()
}

// CheckCompletion completes the iteration when the completion bar is full
func (a *Arbiter) CheckCompletion() bool {
	if a.phase != PhaseRunning || a.completion.GetProgress() < 1 {
		return false
	}
	a.CompleteIteration()
	return true
}

// CheckDepletion handles a settled empty time bar
func (a *Arbiter) CheckDepletion() bool {
	if a.phase != PhaseRunning || !a.depletion.GetIsEmpty() {
		return false
	}
	a.OnIncompleteLaunch()
	return true
}

// OnIncompleteLaunch decides a time-out: low completion loses outright,
// otherwise the fired draw loses with probability 1 - completion
func (a *Arbiter) OnIncompleteLaunch() {
	if a.phase == PhaseFailed {
		return
	}
	completion := a.completion.GetProgress()
	if completion <= parameter.UnconditionalLossThreshold {
		a.LoseGame(CauseTimeout)
		return
	}

	percent := 1 - completion
	a.lastDraw = a.draw()
	if a.lastDraw <= percent {
		a.LoseGame(CauseFired)
		return
	}

	a.gameCount++
	payload := a.iterationPayload()
	payload.Completion = completion
	payload.Draw = a.lastDraw
	logrus.WithFields(logrus.Fields{"completion": completion, "draw": a.lastDraw}).Info("iteration salvaged")
	a.sink.Emit(event.EventIterationSalvaged, payload)

	a.StartIteration()
}

// CompleteIteration credits a win and starts the next iteration in the same tick
func (a *Arbiter) CompleteIteration() {
	if a.phase == PhaseFailed {
		return
	}
	a.setPhase(PhaseCompleted)

	a.depletion.SetInstantToOne()
	a.completion.SetInstant(0)
	a.gameCount++
	a.successCount++
	a.missedCallCount = 0

	a.sink.Emit(event.EventIterationCompleted, a.iterationPayload())
	a.sink.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundSuccess})

	a.StartIteration()
}

// OnManagerCallMissed escalates consecutive misses, penalising the completion bar until the limit
func (a *Arbiter) OnManagerCallMissed() {
	if a.phase == PhaseFailed {
		return
	}
	a.missedCallCount++
	a.publish()

	if a.missedCallCount >= parameter.MissedCallLimit {
		a.missedCallCount = 0
		a.LoseGame(CauseMissedCalls)
		return
	}

	a.completion.AddProgress(-parameter.MissedCallPenalty, parameter.MissedCallPenaltySpeed)
	a.sink.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundError})
}

// OnManagerConsulted clears the consecutive miss streak
func (a *Arbiter) OnManagerConsulted() {
	if a.phase == PhaseFailed {
		return
	}
	a.missedCallCount = 0
	a.publish()
}

// CreditPuzzle adds a solved puzzle's percent to the completion bar
func (a *Arbiter) CreditPuzzle(percent float64) {
	if a.phase != PhaseRunning || percent <= 0 {
		return
	}
	a.completion.AddProgress(percent/100, parameter.CompletionCreditSpeed)
}

// LoseGame ends the session and requests the failure scene
func (a *Arbiter) LoseGame(cause string) {
	if a.phase == PhaseFailed {
		return
	}
	a.setPhase(PhaseFailed)
	a.lossCause = cause
	a.statLoss.Store(cause)
	a.publish()

	logrus.WithFields(logrus.Fields{
		"cause":   cause,
		"game":    a.gameCount,
		"success": a.successCount,
	}).Warn("game lost")

	a.sink.Emit(event.EventGameLost, &event.GameLostPayload{
		Cause:        cause,
		GameCount:    a.gameCount,
		SuccessCount: a.successCount,
		Completion:   a.completion.GetProgress(),
	})
	a.sink.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundLose})
	a.sink.Emit(event.EventSceneLoad, &event.SceneLoadPayload{Scene: core.SceneFailure})
}

// draw maps the source's [0,1) onto (0,1] so a zero loss chance can never fire
func (a *Arbiter) draw() float64 {
	if a.rng == nil {
		return 1
	}
	return 1 - a.rng.Float64()
}

func (a *Arbiter) setPhase(p Phase) {
	a.phase = p
	a.statPhase.Store(p.String())
}

func (a *Arbiter) publish() {
	a.statGames.Store(int64(a.gameCount))
	a.statSuccesses.Store(int64(a.successCount))
	a.statMissed.Store(int64(a.missedCallCount))
	a.statRate.Set(a.depletionRate)
	a.statDepletion.Set(a.depletion.GetProgress())
	a.statCompletion.Set(a.completion.GetProgress())
}

func (a *Arbiter) iterationPayload() *event.IterationPayload {
	return &event.IterationPayload{
		GameCount:     a.gameCount,
		SuccessCount:  a.successCount,
		DepletionRate: a.depletionRate,
	}
}

// Phase returns the current phase
func (a *Arbiter) Phase() Phase { return a.phase }

// Lost reports the terminal state
func (a *Arbiter) Lost() bool { return a.phase == PhaseFailed }

// LossCause returns why the session ended, empty while playing
func (a *Arbiter) LossCause() string { return a.lossCause }

// GameCount returns iterations finished by a win or a salvage
func (a *Arbiter) GameCount() int { return a.gameCount }

// SuccessCount returns iterations won
func (a *Arbiter) SuccessCount() int { return a.successCount }

// MissedCallCount returns the consecutive miss streak
func (a *Arbiter) MissedCallCount() int { return a.missedCallCount }

// DepletionRate returns the current time bar drain per second
func (a *Arbiter) DepletionRate() float64 { return a.depletionRate }

// LastDraw returns the most recent fired draw
func (a *Arbiter) LastDraw() float64 { return a.lastDraw }

// Depletion returns the time bar
func (a *Arbiter) Depletion() *progress.Track { return a.depletion }

// Completion returns the completion bar
func (a *Arbiter) Completion() *progress.Track { return a.completion }
