package scene

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/event"
)

// scripted replays fixed draws, then repeats the last one
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[len(s.vals)-1]
	if s.i < len(s.vals) {
		v = s.vals[s.i]
	}
	s.i++
	return v
}

const catCorridor = "width: 10\nheight: 3\nspawn: {x: 0, y: 1}\ncat:\n  start: {x: 1, y: 1}\n  roam: {x: 1, y: 1, w: 8, h: 1}\n"

func newCatRoom(t *testing.T, yaml string, rng Random) (*Room, *Cat, *event.Recorder) {
	t.Helper()
	l, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, l.Cat)

	room := NewRoom(l)
	rec := &event.Recorder{}
	cat := NewCat(room, *l.Cat, rng, rec)
	require.Same(t, cat, room.Cat())
	return room, cat, rec
}

func TestCatWaitWalkSit(t *testing.T) {
	// wait 1s, target x=5, long walk budget, rest, sit 3s, then wait 1s
	rng := &scripted{vals: []float64{0, 0.5, 0, 0.99, 0.1, 0.5, 0, 0}}
	_, cat, _ := newCatRoom(t, catCorridor, rng)

	assert.Equal(t, CatWaiting, cat.State())
	cat.Update(time.Second)
	require.Equal(t, CatMoving, cat.State())

	for i := 0; i < 4; i++ {
		cat.Update(500 * time.Millisecond)
	}
	assert.Equal(t, core.Point{X: 5, Y: 1}, cat.Pos())
	assert.Equal(t, CatSitting, cat.State())
	assert.True(t, cat.Resting())

	cat.Update(2 * time.Second)
	assert.Equal(t, CatSitting, cat.State(), "still inside the sit time")
	cat.Update(time.Second)
	assert.Equal(t, CatWaiting, cat.State())
}

func TestCatLiesDown(t *testing.T) {
	// wait 1s, target x=2, walk, rest, lie
	rng := &scripted{vals: []float64{0, 0.2, 0, 0.99, 0.1, 0.1, 0}}
	_, cat, _ := newCatRoom(t, catCorridor, rng)

	cat.Update(time.Second)
	cat.Update(500 * time.Millisecond)
	assert.Equal(t, core.Point{X: 2, Y: 1}, cat.Pos())
	assert.Equal(t, CatLying, cat.State())
	assert.Equal(t, "lying", cat.State().String())
}

func TestCatWalkBudgetRunsOut(t *testing.T) {
	// target x=8 needs 7 steps but the walk lasts 2s, then no rest
	rng := &scripted{vals: []float64{0, 0.99, 0, 0, 0.9}}
	_, cat, _ := newCatRoom(t, catCorridor, rng)

	cat.Update(time.Second)
	for i := 0; i < 4; i++ {
		cat.Update(500 * time.Millisecond)
	}
	assert.Equal(t, core.Point{X: 5, Y: 1}, cat.Pos())
	assert.Equal(t, CatWaiting, cat.State())
}

func TestCatBlocksPlayerAndMeows(t *testing.T) {
	rng := &scripted{vals: []float64{0.5}}
	room, cat, rec := newCatRoom(t, catCorridor, rng)

	assert.False(t, room.Move(1, 0), "cat blocks the player")
	assert.Equal(t, core.Point{X: 0, Y: 1}, room.Player())
	assert.Equal(t, CatMoving, cat.State())

	ev, ok := rec.Last(event.EventSoundRequest)
	require.True(t, ok)
	assert.Equal(t, core.SoundMeow, ev.Payload.(*event.SoundRequestPayload).Sound)
	assert.Equal(t, 1, rec.Count(event.EventCatScared))

	// Startled run uses the short step
	cat.Update(150 * time.Millisecond)
	assert.Equal(t, core.Point{X: 2, Y: 1}, cat.Pos())
}

func TestCatNeverEntersBlockedCells(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)
	require.NotNil(t, l.Cat)

	room := NewRoom(l)
	room.Teleport(core.Point{X: 36, Y: 11})
	cat := NewCat(room, *l.Cat, rand.New(rand.NewSource(3)), nil)

	moved := false
	start := cat.Pos()
	for i := 0; i < 4000; i++ {
		cat.Update(50 * time.Millisecond)
		p := cat.Pos()
		require.False(t, room.Blocked(p), "cat entered blocked cell %v", p)
		require.NotEqual(t, room.Player(), p)
		require.True(t, l.Cat.Roam.Contains(p), "cat left its roam area at %v", p)
		if p != start {
			moved = true
		}
	}
	assert.True(t, moved, "cat should wander")
}
