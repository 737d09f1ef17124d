package event

import (
	"github.com/lixenwraith/crunch-time/parameter"
)

// QueueStats is the running account of a session's event backlog
type QueueStats struct {
	Emitted   uint64
	Delivered uint64
	Dropped   uint64
	// Peak is the largest backlog seen between two dispatches
	Peak int
}

// EventQueue buffers events raised during a tick until the router drains them
// Producers and the router run under the session's world lock, one writer at a time,
// so the queue carries no synchronization of its own.
// A backlog at EventQueueSize drops its oldest event to make room.
type EventQueue struct {
	pending []GameEvent
	stats   QueueStats
}

func NewEventQueue() *EventQueue {
	return &EventQueue{pending: make([]GameEvent, 0, 64)}
}

// Emit implements Sink
func (eq *EventQueue) Emit(t EventType, payload any) {
	eq.Push(GameEvent{Type: t, Payload: payload})
}

// Push appends an event to the backlog
func (eq *EventQueue) Push(event GameEvent) {
	if len(eq.pending) >= parameter.EventQueueSize {
		copy(eq.pending, eq.pending[1:])
		eq.pending = eq.pending[:len(eq.pending)-1]
		eq.stats.Dropped++
	}
	eq.pending = append(eq.pending, event)
	eq.stats.Emitted++
	if len(eq.pending) > eq.stats.Peak {
		eq.stats.Peak = len(eq.pending)
	}
}

// Consume hands over the backlog in FIFO order
// Events pushed by handlers during dispatch wait for the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.pending) == 0 {
		return nil
	}
	out := eq.pending
	eq.pending = make([]GameEvent, 0, cap(out))
	eq.stats.Delivered += uint64(len(out))
	return out
}

// Len returns the current backlog
func (eq *EventQueue) Len() int {
	return len(eq.pending)
}

// Stats returns the backlog account
func (eq *EventQueue) Stats() QueueStats {
	return eq.stats
}
