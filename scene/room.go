package scene

import (
	"github.com/lixenwraith/crunch-time/core"
)

// RangeListener receives trigger enter/exit for one object
type RangeListener interface {
	SetPlayerInRange(in bool)
}

// Room is the runtime scene: blocked cells, objects and the player position
type Room struct {
	name    string
	width   int
	height  int
	blocked []bool
	walls   []core.Area
	objects []Object
	player  core.Point
	frozen  bool
	cat     *Cat

	listeners map[string]RangeListener
	inRange   map[string]bool
}

// NewRoom builds the blocking grid from walls and object areas
func NewRoom(l *Layout) *Room {
	r := &Room{
		name:      l.Name,
		width:     l.Width,
		height:    l.Height,
		blocked:   make([]bool, l.Width*l.Height),
		walls:     l.Walls,
		objects:   l.Resolve(),
		player:    l.Spawn,
		listeners: make(map[string]RangeListener),
		inRange:   make(map[string]bool),
	}
	for _, w := range l.Walls {
		r.fill(w)
	}
	for _, o := range r.objects {
		r.fill(o.Area)
	}
	return r
}

func (r *Room) fill(a core.Area) {
	for y := a.Y; y < a.Y+a.Height; y++ {
		for x := a.X; x < a.X+a.Width; x++ {
			if x >= 0 && y >= 0 && x < r.width && y < r.height {
				r.blocked[y*r.width+x] = true
			}
		}
	}
}

// Attach routes range changes for object id to l and sends the current state
func (r *Room) Attach(id string, l RangeListener) {
	r.listeners[id] = l
	l.SetPlayerInRange(r.inTrigger(id))
}

// Move steps the player by (dx, dy), refusing blocked cells or while frozen
func (r *Room) Move(dx, dy int) bool {
	if r.frozen {
		return false
	}
	next := core.Point{X: r.player.X + dx, Y: r.player.Y + dy}
	if r.Blocked(next) {
		return false
	}
	if r.cat != nil && r.cat.Pos() == next {
		r.cat.Scare()
		return false
	}
	r.player = next
	r.syncRanges()
	return true
}

// Teleport places the player without collision checks, used by tests and respawn
func (r *Room) Teleport(p core.Point) {
	r.player = p
	r.syncRanges()
}

// Freeze stops movement while a puzzle is open
func (r *Room) Freeze(frozen bool) {
	r.frozen = frozen
}

func (r *Room) syncRanges() {
	for _, o := range r.objects {
		in := o.Trigger.Contains(r.player)
		if r.inRange[o.ID] == in {
			continue
		}
		r.inRange[o.ID] = in
		if l, ok := r.listeners[o.ID]; ok {
			l.SetPlayerInRange(in)
		}
	}
}

func (r *Room) inTrigger(id string) bool {
	for _, o := range r.objects {
		if o.ID == id {
			in := o.Trigger.Contains(r.player)
			r.inRange[id] = in
			return in
		}
	}
	return false
}

// Blocked reports walls, objects and out-of-bounds cells
func (r *Room) Blocked(p core.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= r.width || p.Y >= r.height {
		return true
	}
	return r.blocked[p.Y*r.width+p.X]
}

// Nearby returns the ids of objects whose trigger holds the player, in layout order
func (r *Room) Nearby() []string {
	var ids []string
	for _, o := range r.objects {
		if o.Trigger.Contains(r.player) {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// ObjectAt returns the object occupying p
func (r *Room) ObjectAt(p core.Point) (Object, bool) {
	for _, o := range r.objects {
		if o.Area.Contains(p) {
			return o, true
		}
	}
	return Object{}, false
}

// Name returns the layout name
func (r *Room) Name() string { return r.name }

// Size returns the grid dimensions
func (r *Room) Size() (int, int) { return r.width, r.height }

// Player returns the player position
func (r *Room) Player() core.Point { return r.player }

// Cat returns the office cat, nil when the layout has none
func (r *Room) Cat() *Cat { return r.cat }

// Frozen reports whether movement is blocked
func (r *Room) Frozen() bool { return r.frozen }

// Walls returns the wall areas
func (r *Room) Walls() []core.Area { return r.walls }

// Objects returns the resolved objects in layout order
func (r *Room) Objects() []Object { return r.objects }
