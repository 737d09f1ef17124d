package scene

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/parameter"
)

// Random is the draw source for the cat's timers and targets
type Random interface {
	Float64() float64
}

// CatState is the cat's current activity
type CatState uint8

const (
	CatWaiting CatState = iota
	CatMoving
	CatSitting
	CatLying
)

var catStateNames = [...]string{
	CatWaiting: "waiting",
	CatMoving:  "moving",
	CatSitting: "sitting",
	CatLying:   "lying",
}

func (s CatState) String() string {
	if int(s) < len(catStateNames) {
		return catStateNames[s]
	}
	return "unknown"
}

// CatConfig places the cat and bounds where it wanders
type CatConfig struct {
	Start core.Point `yaml:"start"`
	Roam  core.Area  `yaml:"roam"`
}

// Cat wanders the room on its own timers: wait, walk toward a random cell,
// then maybe sit or lie down before waiting again.
// It blocks the player, and a bump startles it into a short run with a meow.
type Cat struct {
	room *Room
	roam core.Area
	rng  Random
	sink event.Sink

	pos    core.Point
	target core.Point
	state  CatState

	remaining time.Duration // time left in the current state
	stepEvery time.Duration
	stepLeft  time.Duration
}

// NewCat places a cat in room and registers it as an obstacle
func NewCat(room *Room, cfg CatConfig, rng Random, sink event.Sink) *Cat {
	if sink == nil {
		sink = event.Discard
	}
	c := &Cat{
		room: room,
		roam: cfg.Roam,
		rng:  rng,
		sink: sink,
		pos:  cfg.Start,
	}
	c.wait()
	room.cat = c
	return c
}

func (c *Cat) Name() string { return "cat" }

func (c *Cat) Priority() int { return parameter.PriorityCat }

// Update advances the cat's current activity
func (c *Cat) Update(dt time.Duration) {
	c.remaining -= dt

	switch c.state {
	case CatWaiting:
		if c.remaining <= 0 {
			c.walk(c.pickTarget(), c.between(parameter.CatMoveMin, parameter.CatMoveMax), parameter.CatStepInterval)
		}

	case CatMoving:
		c.stepLeft -= dt
		for c.stepLeft <= 0 && c.pos != c.target {
			c.stepLeft += c.stepEvery
			if !c.step() {
				break
			}
		}
		if c.pos == c.target || c.remaining <= 0 {
			c.afterWalk()
		}

	case CatSitting, CatLying:
		if c.remaining <= 0 {
			logrus.WithField("pos", c.pos).Debug("cat stood up")
			c.wait()
		}
	}
}

// Scare stands the cat up and sends it running to a fresh target
func (c *Cat) Scare() {
	c.walk(c.pickTarget(), parameter.CatScareRunTime, parameter.CatScareStepInterval)
	c.sink.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundMeow})
	c.sink.Emit(event.EventCatScared, &event.CatPayload{X: c.pos.X, Y: c.pos.Y, State: c.state.String()})
}

func (c *Cat) wait() {
	c.state = CatWaiting
	c.remaining = c.between(parameter.CatWaitMin, parameter.CatWaitMax)
}

func (c *Cat) walk(target core.Point, budget, stepEvery time.Duration) {
	c.state = CatMoving
	c.target = target
	c.remaining = budget
	c.stepEvery = stepEvery
	c.stepLeft = stepEvery
}

func (c *Cat) afterWalk() {
	if c.rng.Float64() >= parameter.CatRestChance {
		c.wait()
		return
	}
	if c.rng.Float64() < parameter.CatLieChance {
		c.state = CatLying
		c.remaining = c.between(parameter.CatLieMin, parameter.CatLieMax)
	} else {
		c.state = CatSitting
		c.remaining = c.between(parameter.CatSitMin, parameter.CatSitMax)
	}
}

// step moves one cell toward target along the longer axis first, false when boxed in
func (c *Cat) step() bool {
	dx := sign(c.target.X - c.pos.X)
	dy := sign(c.target.Y - c.pos.Y)

	first := core.Point{X: c.pos.X + dx, Y: c.pos.Y}
	second := core.Point{X: c.pos.X, Y: c.pos.Y + dy}
	if abs(c.target.Y-c.pos.Y) > abs(c.target.X-c.pos.X) {
		first, second = second, first
	}

	for _, next := range []core.Point{first, second} {
		if next != c.pos && c.free(next) {
			c.pos = next
			return true
		}
	}
	return false
}

func (c *Cat) free(p core.Point) bool {
	return !c.room.Blocked(p) && p != c.room.Player()
}

// pickTarget draws a cell inside the roam area
func (c *Cat) pickTarget() core.Point {
	return core.Point{
		X: c.roam.X + int(c.rng.Float64()*float64(c.roam.Width)),
		Y: c.roam.Y + int(c.rng.Float64()*float64(c.roam.Height)),
	}
}

func (c *Cat) between(lo, hi time.Duration) time.Duration {
	return lo + time.Duration(c.rng.Float64()*float64(hi-lo))
}

// Pos returns the cat's cell
func (c *Cat) Pos() core.Point { return c.pos }

// State returns the cat's current activity
func (c *Cat) State() CatState { return c.state }

// Resting reports sitting or lying
func (c *Cat) Resting() bool { return c.state == CatSitting || c.state == CatLying }

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
