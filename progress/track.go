// Package progress implements the animatable [0,1] bars that drive an iteration:
// the depletion (time) bar and the completion (task) bar.
package progress

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/event"
)

// Config describes the indicator a track is bound to
type Config struct {
	Name         string
	Initial      float64
	DefaultSpeed float64
	Priority     int
}

// Track is a single animatable scalar in [0,1]
// Mutated only through SetProgress, AddProgress and SetInstant; advanced by Update once per tick
type Track struct {
	name         string
	priority     int
	defaultSpeed float64

	value  float64
	target float64

	// Animation state, valid while animating
	animating bool
	from      float64
	t         float64
	speed     float64

	// Settled emptiness, recomputed at animation start and completion only
	isEmpty bool

	// Misconfigured tracks stop ticking and ignore writes
	disabled bool

	sink event.Sink
	log  *logrus.Entry
}

// New creates a track; an invalid config yields a disabled track rather than an error
func New(cfg Config, sink event.Sink) *Track {
	if sink == nil {
		sink = event.Discard
	}
	tr := &Track{
		name:         cfg.Name,
		priority:     cfg.Priority,
		defaultSpeed: cfg.DefaultSpeed,
		sink:         sink,
		log:          logrus.WithField("track", cfg.Name),
	}

	if err := cfg.validate(); err != nil {
		tr.log.Errorf("track disabled: %v", err)
		tr.disabled = true
		return tr
	}

	tr.value = cfg.Initial
	tr.target = cfg.Initial
	tr.isEmpty = cfg.Initial == 0
	return tr
}

func (c Config) validate() error {
	if math.IsNaN(c.Initial) || c.Initial < 0 || c.Initial > 1 {
		return errInvalidInitial(c.Initial)
	}
	if c.DefaultSpeed == 0 || math.IsNaN(c.DefaultSpeed) || math.IsInf(c.DefaultSpeed, 0) {
		return errInvalidSpeed(c.DefaultSpeed)
	}
	return nil
}

// Name returns system's name
func (tr *Track) Name() string {
	return tr.name
}

// Priority returns the system's priority
func (tr *Track) Priority() int {
	return tr.priority
}

// SetProgress starts an animation toward target, optional speed overrides the default
// Out-of-range targets are clamped with a warning; equal targets are ignored
// Targets within 1e-9 of a bound settle exactly on it.
// A target of 0 does not mark the bar empty up front: emptiness is set only when
// the animation lands, so a fresh countdown is not read as already expired.
func (tr *Track) SetProgress(target float64, speed ...float64) {
	if tr.disabled {
		return
	}
	if math.IsNaN(target) {
		tr.log.Warn("invalid progress passed: NaN, ignored")
		return
	}
	if target < 0 || target > 1 {
		tr.log.Warnf("invalid progress passed, value out of bounds: %v (must range from 0 to 1)", target)
		target = clamp01(target)
	}
	target = snapEnds(target)
	if target == tr.value {
		return
	}

	s := tr.defaultSpeed
	if len(speed) > 0 && speed[0] != 0 && !math.IsNaN(speed[0]) {
		s = speed[0]
	}

	// Direction comes from target; the rate only scales parametric time
	tr.animating = true
	tr.from = tr.value
	tr.target = target
	tr.t = 0
	tr.speed = math.Abs(s)

	// Not settled empty while running, even when heading to 0
	tr.isEmpty = false
}

// AddProgress animates by delta relative to the pending target, floored at 0 and capped at 1
// Successive calls accumulate even while a previous animation is in flight
func (tr *Track) AddProgress(delta float64, speed ...float64) {
	if tr.disabled || math.IsNaN(delta) {
		return
	}
	tr.SetProgress(clamp01(tr.Target()+delta), speed...)
}

// SetInstantToOne cancels any animation and fills the bar immediately
func (tr *Track) SetInstantToOne() {
	tr.SetInstant(1)
}

// SetInstant cancels any animation and sets the value immediately
func (tr *Track) SetInstant(value float64) {
	if tr.disabled {
		return
	}
	value = clamp01(value)
	tr.animating = false
	tr.value = value
	tr.target = value
	tr.isEmpty = value == 0
	tr.sink.Emit(event.EventProgressChanged, &event.ProgressPayload{Track: tr.name, Value: value})
}

// Update advances the animation by dt
func (tr *Track) Update(dt time.Duration) {
	if tr.disabled || !tr.animating {
		return
	}

	tr.t += dt.Seconds() * tr.speed
	if tr.t >= 1 {
		tr.animating = false
		tr.value = tr.target
		tr.isEmpty = tr.target == 0
		tr.sink.Emit(event.EventProgressChanged, &event.ProgressPayload{Track: tr.name, Value: tr.value})
		tr.sink.Emit(event.EventProgressCompleted, &event.ProgressPayload{Track: tr.name, Value: tr.value})
		return
	}

	tr.value = clamp01(tr.from + (tr.target-tr.from)*tr.t)
	tr.sink.Emit(event.EventProgressChanged, &event.ProgressPayload{Track: tr.name, Value: tr.value})
}

// GetProgress returns the current value clamped to [0,1]
func (tr *Track) GetProgress() float64 {
	return clamp01(tr.value)
}

// GetIsEmpty reports the settled empty state
func (tr *Track) GetIsEmpty() bool {
	return tr.isEmpty
}

// Target returns where the bar is heading, or the current value when idle
func (tr *Track) Target() float64 {
	if tr.animating {
		return tr.target
	}
	return tr.value
}

// Animating reports an in-flight animation
func (tr *Track) Animating() bool {
	return tr.animating
}

// Disabled reports a track switched off by a configuration error
func (tr *Track) Disabled() bool {
	return tr.disabled
}

// endEpsilon absorbs rounding left by summed fractional credits
const endEpsilon = 1e-9

// snapEnds pulls values within endEpsilon of 0 or 1 onto the bound
func snapEnds(v float64) float64 {
	if v < endEpsilon {
		return 0
	}
	if v > 1-endEpsilon {
		return 1
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
