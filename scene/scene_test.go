package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/crunch-time/core"
)

func TestDefaultLayout(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "office", l.Name)

	require.NotNil(t, l.Cat)
	assert.Equal(t, core.Point{X: 34, Y: 12}, l.Cat.Start)

	objs := l.Resolve()
	require.Len(t, objs, 5)

	byID := map[string]Object{}
	for _, o := range objs {
		byID[o.ID] = o
	}

	mgr := byID["manager_office"]
	assert.Equal(t, core.TaskManager, mgr.Slot.Task)
	assert.Equal(t, core.PuzzleTimedWait, mgr.Slot.Puzzle)
	assert.True(t, mgr.Slot.StartOnCooldown)
	assert.Equal(t, 25*time.Second, mgr.Slot.Cooldown)
	assert.Equal(t, core.Area{X: 36, Y: 3, Width: 7, Height: 5}, mgr.Trigger)

	ws := byID["workstation"]
	assert.Equal(t, core.PuzzleCodeEntry, ws.Slot.Puzzle)
	assert.False(t, ws.Slot.StartOnCooldown)
	assert.Equal(t, 'W', ws.Glyph)
	assert.Equal(t, ws.Area.Grow(1), ws.Trigger)

	assert.Equal(t, core.PuzzleNone, byID["coffee"].Slot.Puzzle)
}

func TestLayoutValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero size", "name: x\nwidth: 0\nheight: 5\n"},
		{"spawn outside", "width: 5\nheight: 5\nspawn: {x: 9, y: 0}\n"},
		{"duplicate id", "width: 10\nheight: 10\nobjects:\n  - {id: a, area: {x: 1, y: 1, w: 1, h: 1}}\n  - {id: a, area: {x: 3, y: 3, w: 1, h: 1}}\n"},
		{"unknown puzzle", "width: 10\nheight: 10\nobjects:\n  - {id: a, puzzle: chess, area: {x: 1, y: 1, w: 1, h: 1}}\n"},
		{"unknown task", "width: 10\nheight: 10\nobjects:\n  - {id: a, task: lunch, area: {x: 1, y: 1, w: 1, h: 1}}\n"},
		{"two managers", "width: 10\nheight: 10\nobjects:\n  - {id: a, task: manager, area: {x: 1, y: 1, w: 1, h: 1}}\n  - {id: b, task: manager, area: {x: 3, y: 3, w: 1, h: 1}}\n"},
		{"object out of bounds", "width: 10\nheight: 10\nobjects:\n  - {id: a, area: {x: 9, y: 9, w: 2, h: 2}}\n"},
		{"cat outside roam", "width: 10\nheight: 10\ncat: {start: {x: 1, y: 1}, roam: {x: 3, y: 3, w: 2, h: 2}}\n"},
		{"cat in wall", "width: 10\nheight: 10\nwalls: [{x: 0, y: 1, w: 10, h: 1}]\ncat: {start: {x: 1, y: 1}, roam: {x: 0, y: 0, w: 5, h: 5}}\n"},
		{"cat on spawn", "width: 10\nheight: 10\nspawn: {x: 2, y: 2}\ncat: {start: {x: 2, y: 2}, roam: {x: 0, y: 0, w: 5, h: 5}}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLayout), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	data := "name: tiny\nwidth: 6\nheight: 4\nspawn: {x: 1, y: 1}\nobjects:\n  - {id: desk, puzzle: math, task: graphics, cooldown: 3s, area: {x: 4, y: 1, w: 1, h: 1}}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", l.Name)
	assert.Equal(t, 3*time.Second, l.Resolve()[0].Slot.Cooldown)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

type rangeLog struct{ states []bool }

func (r *rangeLog) SetPlayerInRange(in bool) { r.states = append(r.states, in) }

func TestRoomMovementAndRange(t *testing.T) {
	l, err := Parse([]byte("width: 8\nheight: 3\nspawn: {x: 0, y: 1}\nobjects:\n  - {id: desk, area: {x: 5, y: 1, w: 1, h: 1}}\n"))
	require.NoError(t, err)
	room := NewRoom(l)

	log := &rangeLog{}
	room.Attach("desk", log)
	require.Equal(t, []bool{false}, log.states)

	for i := 0; i < 3; i++ {
		require.True(t, room.Move(1, 0))
	}
	assert.Equal(t, []bool{false}, log.states, "trigger starts at x=4")

	require.True(t, room.Move(1, 0))
	assert.Equal(t, []bool{false, true}, log.states)
	assert.Equal(t, []string{"desk"}, room.Nearby())

	assert.False(t, room.Move(1, 0), "object blocks movement")
	assert.False(t, room.Move(0, -2), "bounds block movement")

	room.Freeze(true)
	assert.False(t, room.Move(-1, 0))
	room.Freeze(false)

	require.True(t, room.Move(-1, 0))
	assert.Equal(t, []bool{false, true, false}, log.states)
}

func TestRoomWallsBlock(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)
	room := NewRoom(l)

	assert.True(t, room.Blocked(core.Point{X: 0, Y: 0}))
	assert.True(t, room.Blocked(core.Point{X: 30, Y: 5}))
	assert.False(t, room.Blocked(l.Spawn))

	o, ok := room.ObjectAt(core.Point{X: 39, Y: 5})
	require.True(t, ok)
	assert.Equal(t, "manager_office", o.ID)
}
