package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/interaction"
	"github.com/lixenwraith/crunch-time/parameter"
	"github.com/lixenwraith/crunch-time/progress"
	"github.com/lixenwraith/crunch-time/progression"
	"github.com/lixenwraith/crunch-time/puzzle"
	"github.com/lixenwraith/crunch-time/scene"
	"github.com/lixenwraith/crunch-time/status"
	"github.com/lixenwraith/crunch-time/task"
)

// Options configure a new session
type Options struct {
	// Layout selects the scene, nil loads the embedded office
	Layout *scene.Layout
	// Seed drives puzzles and the fired draw, 0 seeds from the clock
	Seed int64
	// Random overrides the fired-draw source
	Random progression.Random
	// Registry receives metrics, nil creates a private one
	Registry *status.Registry
}

// Session owns every component of one play-through and serializes access to them
// All exported methods take the world update lock
type Session struct {
	ID       uuid.UUID
	Seed     int64
	World    *World
	Queue    *event.EventQueue
	Router   *event.Router
	Registry *status.Registry

	Depletion  *progress.Track
	Completion *progress.Track
	Arbiter    *progression.Arbiter
	Ledger     *task.Ledger
	Call       *task.ManagerTask
	Puzzles    *puzzle.Manager
	Room       *scene.Room

	slots    []*interaction.Slot
	slotByID map[string]*interaction.Slot

	diag    *diagnostics
	started bool
}

// NewSession wires the components of a session without starting it
func NewSession(opts Options) (*Session, error) {
	layout := opts.Layout
	if layout == nil {
		var err error
		if layout, err = scene.Default(); err != nil {
			return nil, fmt.Errorf("failed to load default scene: %w", err)
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	reg := opts.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}

	var draw progression.Random = rng
	if opts.Random != nil {
		draw = opts.Random
	}

	queue := event.NewEventQueue()
	s := &Session{
		ID:       uuid.New(),
		Seed:     seed,
		World:    NewWorld(),
		Queue:    queue,
		Router:   event.NewRouter(queue),
		Registry: reg,
		slotByID: make(map[string]*interaction.Slot),
	}

	s.Depletion = progress.New(progress.Config{
		Name:         "depletion",
		Initial:      1,
		DefaultSpeed: parameter.DepletionDefaultSpeed,
		Priority:     parameter.PriorityDepletion,
	}, queue)
	s.Completion = progress.New(progress.Config{
		Name:         "completion",
		Initial:      0,
		DefaultSpeed: parameter.CompletionDefaultSpeed,
		Priority:     parameter.PriorityCompletion,
	}, queue)
	s.Arbiter = progression.NewArbiter(s.Depletion, s.Completion, draw, queue, reg)
	s.Ledger = task.NewLedger(queue, reg)
	s.Puzzles = puzzle.NewManager(rng, s.Arbiter, queue, reg)
	s.Room = scene.NewRoom(layout)

	for _, obj := range s.Room.Objects() {
		deps := interaction.Deps{
			Puzzles: s.Puzzles,
			Ledger:  s.Ledger,
			Consult: s.Arbiter,
			Sink:    queue,
		}
		if obj.Slot.Task == core.TaskManager && s.Call == nil {
			s.Call = task.NewManagerTask(obj.ID, s.Ledger, s.Arbiter, queue)
			deps.Call = s.Call
		}
		slot := interaction.NewSlot(obj.Slot, deps)
		s.slots = append(s.slots, slot)
		s.slotByID[obj.ID] = slot
		s.Room.Attach(obj.ID, slot)
	}

	if layout.Cat != nil {
		catRng := rand.New(rand.NewSource(seed ^ parameter.CatSeedSalt))
		s.World.AddSystem(scene.NewCat(s.Room, *layout.Cat, catRng, queue))
	}

	s.diag = newDiagnostics(reg, queue)

	s.World.AddSystem(s.Puzzles)
	s.World.AddSystem(s.Depletion)
	s.World.AddSystem(s.Completion)
	for _, slot := range s.slots {
		s.World.AddSystem(slot)
	}
	if s.Call != nil {
		s.World.AddSystem(s.Call)
	}
	s.World.AddSystem(s.Arbiter)
	s.World.AddSystem(s.diag)

	logrus.WithFields(logrus.Fields{
		"session": s.ID,
		"seed":    seed,
		"scene":   layout.Name,
		"slots":   len(s.slots),
		"cat":     layout.Cat != nil,
	}).Info("session created")

	return s, nil
}

// Register adds an event handler, safe to call while the scheduler runs
func (s *Session) Register(h event.Handler) {
	s.World.RunSafe(func() {
		s.Router.Register(h)
	})
}

// Start puts every slot into its initial state and begins the first iteration
func (s *Session) Start() {
	s.World.RunSafe(func() {
		if s.started {
			return
		}
		s.started = true
		for _, slot := range s.slots {
			slot.Start()
		}
		s.Arbiter.StartIteration()
		s.Router.DispatchAll()
	})
}

// Update advances one tick and dispatches the events it produced
// After a loss the systems stop ticking
func (s *Session) Update(dt time.Duration) {
	s.World.RunSafe(func() {
		if s.started && !s.Arbiter.Lost() {
			if dt > parameter.MaxTickDelta {
				dt = parameter.MaxTickDelta
			}
			s.World.UpdateLocked(dt)
			s.Room.Freeze(s.Puzzles.Active())
		}
		s.Router.DispatchAll()
	})
}

// Interact tries each slot whose trigger holds the player, in layout order
func (s *Session) Interact() bool {
	ok := false
	s.World.RunSafe(func() {
		if !s.started || s.Arbiter.Lost() || s.Puzzles.Active() {
			return
		}
		for _, id := range s.Room.Nearby() {
			if slot := s.slotByID[id]; slot != nil && slot.TryInteract() {
				ok = true
				break
			}
		}
		s.Room.Freeze(s.Puzzles.Active())
		s.Router.DispatchAll()
	})
	return ok
}

// Move steps the player, refused while a puzzle is open
func (s *Session) Move(dx, dy int) bool {
	ok := false
	s.World.RunSafe(func() {
		if s.Arbiter.Lost() {
			return
		}
		ok = s.Room.Move(dx, dy)
		s.Router.DispatchAll()
	})
	return ok
}

// PuzzleInput routes a key to the open puzzle
func (s *Session) PuzzleInput(in puzzle.Input) bool {
	ok := false
	s.World.RunSafe(func() {
		if s.Arbiter.Lost() {
			return
		}
		ok = s.Puzzles.HandleInput(in)
		s.Room.Freeze(s.Puzzles.Active())
		s.Router.DispatchAll()
	})
	return ok
}

// SetPaused records the pause state and notifies handlers
func (s *Session) SetPaused(paused bool) {
	s.World.RunSafe(func() {
		s.diag.paused.Store(paused)
		s.Queue.Emit(event.EventGamePaused, &event.PausePayload{Paused: paused})
		s.Router.DispatchAll()
	})
}

// Slot returns a slot by object id
func (s *Session) Slot(id string) (*interaction.Slot, bool) {
	slot, ok := s.slotByID[id]
	return slot, ok
}

// Slots returns the slots in layout order
func (s *Session) Slots() []*interaction.Slot {
	out := make([]*interaction.Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// PuzzleOpen reports whether a puzzle currently owns the keyboard
func (s *Session) PuzzleOpen() bool {
	open := false
	s.World.RunSafe(func() {
		open = s.Puzzles.Active()
	})
	return open
}

// Lost reports the terminal state
func (s *Session) Lost() bool {
	lost := false
	s.World.RunSafe(func() {
		lost = s.Arbiter.Lost()
	})
	return lost
}
