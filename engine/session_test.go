package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/progression"
	"github.com/lixenwraith/crunch-time/puzzle"
	"github.com/lixenwraith/crunch-time/scene"
	"github.com/lixenwraith/crunch-time/status"
)

const tick = 50 * time.Millisecond

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func newTestSession(t *testing.T) (*Session, *event.Recorder) {
	t.Helper()
	s, err := NewSession(Options{Seed: 7, Random: fixedRandom(0.5)})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	rec := &event.Recorder{}
	s.Register(event.HandlerFunc{Fn: func(ev event.GameEvent) { rec.Emit(ev.Type, ev.Payload) }})
	s.Start()
	return s, rec
}

func advance(s *Session, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		s.Update(tick)
	}
}

func TestSessionStart(t *testing.T) {
	s, rec := newTestSession(t)

	if s.ID.String() == "" {
		t.Error("Expected session id")
	}
	snap := s.Snapshot()
	if snap.Phase != progression.PhaseRunning.String() {
		t.Errorf("Expected running, got %s", snap.Phase)
	}
	if snap.Depletion != 1 || snap.Completion != 0 {
		t.Errorf("Expected fresh tracks, got depletion=%v completion=%v", snap.Depletion, snap.Completion)
	}
	if len(snap.Tasks) != 3 {
		t.Errorf("Expected 3 tasks posted at start, got %d", len(snap.Tasks))
	}
	if rec.Count(event.EventIterationStarted) != 1 {
		t.Errorf("Expected 1 iteration start, got %d", rec.Count(event.EventIterationStarted))
	}

	// Manager slot starts on cooldown, no call yet
	if s.Call == nil || s.Call.Active() {
		t.Error("Expected idle manager call at start")
	}
}

func TestSessionSolvePuzzleCreditsCompletion(t *testing.T) {
	s, rec := newTestSession(t)

	s.Room.Teleport(core.Point{X: 8, Y: 4})
	if !s.Interact() {
		t.Fatal("Expected workstation interaction")
	}
	if !s.PuzzleOpen() {
		t.Fatal("Expected puzzle open after interaction")
	}
	if s.Move(1, 0) {
		t.Error("Expected movement frozen during puzzle")
	}

	code := s.Puzzles.Current().(*puzzle.CodeEntry).Target()
	for _, r := range code {
		s.PuzzleInput(puzzle.Input{Key: puzzle.KeyRune, Rune: r})
	}
	s.PuzzleInput(puzzle.Input{Key: puzzle.KeyEnter})

	advance(s, time.Second)

	snap := s.Snapshot()
	if snap.Completion < 0.13 || snap.Completion > 0.27 {
		t.Errorf("Expected completion in credit range, got %v", snap.Completion)
	}
	if snap.Puzzle != nil || s.PuzzleOpen() {
		t.Error("Expected puzzle closed")
	}
	slot, _ := s.Slot("workstation")
	if !slot.IsOnCooldown() {
		t.Error("Expected workstation on cooldown")
	}
	for _, task := range snap.Tasks {
		if task.Label == core.LabelGameDev {
			t.Error("Expected workstation task withdrawn")
		}
	}
	if rec.Count(event.EventPuzzleSolved) != 1 {
		t.Errorf("Expected 1 solve event, got %d", rec.Count(event.EventPuzzleSolved))
	}
	if !s.Move(1, 0) {
		t.Error("Expected movement restored after puzzle")
	}
}

func TestSessionMissedCallsLose(t *testing.T) {
	s, rec := newTestSession(t)

	mgr, ok := s.Slot("manager_office")
	if !ok {
		t.Fatal("Expected manager slot")
	}

	advance(s, mgr.CooldownDuration())
	if !s.Call.Active() {
		t.Fatal("Expected manager call after first cooldown")
	}

	advance(s, 11*time.Second)
	if got := s.Arbiter.MissedCallCount(); got != 1 {
		t.Fatalf("Expected 1 missed call, got %d", got)
	}
	if s.Lost() {
		t.Fatal("Expected single miss to be tolerated")
	}

	advance(s, mgr.CooldownDuration()+11*time.Second)
	if !s.Lost() {
		t.Fatal("Expected loss after second consecutive miss")
	}
	if s.Arbiter.LossCause() != progression.CauseMissedCalls {
		t.Errorf("Expected missed_calls, got %s", s.Arbiter.LossCause())
	}
	ev, ok := rec.Last(event.EventSceneLoad)
	if !ok || ev.Payload.(*event.SceneLoadPayload).Scene != core.SceneFailure {
		t.Error("Expected failure scene request")
	}

	// Systems stop after the loss
	before := s.Snapshot().Tick
	advance(s, time.Second)
	if after := s.Snapshot().Tick; after != before {
		t.Errorf("Expected no ticks after loss, got %d -> %d", before, after)
	}
	if s.Interact() {
		t.Error("Expected interaction refused after loss")
	}
}

func TestSessionTimeoutLowCompletionLoses(t *testing.T) {
	layout, err := scene.Parse([]byte("name: cubicle\nwidth: 6\nheight: 4\nspawn: {x: 1, y: 1}\nobjects:\n  - {id: desk, puzzle: math, task: gamedev, area: {x: 4, y: 1, w: 1, h: 1}}\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s, err := NewSession(Options{Layout: layout, Seed: 3, Random: fixedRandom(0)})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	s.Start()
	if s.Call != nil {
		t.Fatal("Expected no manager call without a manager object")
	}

	// Base rate drains the time bar in 90s
	advance(s, 89*time.Second)
	if s.Lost() {
		t.Fatal("Expected session alive before the time bar empties")
	}
	advance(s, 2*time.Second)
	if !s.Lost() {
		t.Fatal("Expected time-out loss")
	}
	if cause := s.Arbiter.LossCause(); cause != progression.CauseTimeout {
		t.Errorf("Expected timeout, got %s", cause)
	}
}

func TestSessionPauseEvent(t *testing.T) {
	s, rec := newTestSession(t)
	s.SetPaused(true)

	if !s.Snapshot().Paused {
		t.Error("Expected paused snapshot")
	}
	ev, ok := rec.Last(event.EventGamePaused)
	if !ok || !ev.Payload.(*event.PausePayload).Paused {
		t.Error("Expected pause event")
	}
}

func TestSessionSnapshotSlots(t *testing.T) {
	s, _ := newTestSession(t)
	s.Room.Teleport(core.Point{X: 8, Y: 4})

	snap := s.Snapshot()
	if len(snap.Slots) != len(s.Room.Objects()) {
		t.Fatalf("Expected %d slots, got %d", len(s.Room.Objects()), len(snap.Slots))
	}
	for _, v := range snap.Slots {
		if v.ID == "workstation" {
			if !v.InRange || v.Prompt == "" {
				t.Errorf("Expected workstation prompt in range, got %+v", v)
			}
		}
	}
}

func TestSessionDiagnosticsReportBacklog(t *testing.T) {
	s, _ := newTestSession(t)
	advance(s, time.Second)

	ints := s.Registry.Ints
	if got := ints.Get(status.KeyTicks).Load(); got != 20 {
		t.Errorf("Expected 20 ticks, got %d", got)
	}
	if ints.Get(status.KeyEventsDelivered).Load() == 0 {
		t.Error("Expected delivered events to be reported")
	}
	if ints.Get(status.KeyEventBacklogPeak).Load() == 0 {
		t.Error("Expected non-zero backlog peak")
	}
	if got := ints.Get(status.KeyEventsDropped).Load(); got != 0 {
		t.Errorf("Expected no dropped events, got %d", got)
	}
	if s.Queue.Len() != 0 {
		t.Errorf("Expected drained queue after update, got %d", s.Queue.Len())
	}
}

func TestSessionCatWandersAndBlocks(t *testing.T) {
	s, rec := newTestSession(t)

	snap := s.Snapshot()
	if snap.Cat == nil {
		t.Fatal("Expected office cat in snapshot")
	}
	start := snap.Cat.Pos
	if snap.Cat.State != "waiting" {
		t.Errorf("Expected cat waiting at start, got %s", snap.Cat.State)
	}

	s.Room.Teleport(core.Point{X: start.X - 1, Y: start.Y})
	if s.Move(1, 0) {
		t.Fatal("Expected cat to block the player")
	}
	if rec.Count(event.EventCatScared) != 1 {
		t.Errorf("Expected one CatScared event, got %d", rec.Count(event.EventCatScared))
	}
	ev, ok := rec.Last(event.EventSoundRequest)
	if !ok || ev.Payload.(*event.SoundRequestPayload).Sound != core.SoundMeow {
		t.Errorf("Expected meow cue, got %+v", ev)
	}

	advance(s, 30*time.Second)
	pos := s.Snapshot().Cat.Pos
	if s.Room.Blocked(pos) {
		t.Errorf("Cat on blocked cell %v", pos)
	}
}
