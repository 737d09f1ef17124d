package event

// Sink receives notifications from core components
// Components never read back through a Sink; presentation adapters subscribe via Router
type Sink interface {
	Emit(t EventType, payload any)
}

// Discard is a Sink that drops everything
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(EventType, any) {}

// Recorder is a Sink that keeps every event in order, for tests and replays
type Recorder struct {
	Events []GameEvent
}

// Emit implements Sink
func (r *Recorder) Emit(t EventType, payload any) {
	r.Events = append(r.Events, GameEvent{Type: t, Payload: payload})
}

// Count returns the number of recorded events of type t
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// Last returns the most recent event of type t
func (r *Recorder) Last(t EventType) (GameEvent, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Type == t {
			return r.Events[i], true
		}
	}
	return GameEvent{}, false
}

// Reset drops recorded events
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
