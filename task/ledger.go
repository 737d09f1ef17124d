// Package task holds the outstanding-task ledger and the manager call countdown
// that feeds missed calls back into progression.
package task

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/status"
)

// Entry is a single ledger row
type Entry struct {
	Label    string
	Blinking bool
	// Countdown is display-only; HasCountdown distinguishes "no timer" from an expired one
	Countdown    time.Duration
	HasCountdown bool
}

// Ledger is the ordered list of outstanding tasks, keyed by label
type Ledger struct {
	entries []Entry
	sink    event.Sink

	statCount *atomic.Int64
}

// NewLedger creates an empty ledger; reg may be nil
func NewLedger(sink event.Sink, reg *status.Registry) *Ledger {
	if sink == nil {
		sink = event.Discard
	}
	l := &Ledger{sink: sink}
	if reg != nil {
		l.statCount = reg.Ints.Get(status.KeyTaskCount)
	}
	return l
}

// AddTask appends an entry, ignoring labels already present
// The manager label blinks and shows the call countdown, the countdown itself is driven by ManagerTask
func (l *Ledger) AddTask(label string) {
	if label == "" || l.index(label) >= 0 {
		return
	}

	e := Entry{Label: label}
	if label == core.LabelManager {
		e.Blinking = true
		e.HasCountdown = true
	}
	l.entries = append(l.entries, e)
	l.publish()

	l.sink.Emit(event.EventTaskAdded, &event.TaskPayload{Label: label, Blinking: e.Blinking})
}

// RemoveTask removes the first entry matching label, absent labels are ignored
func (l *Ledger) RemoveTask(label string) {
	i := l.index(label)
	if i < 0 {
		return
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	l.publish()

	l.sink.Emit(event.EventTaskRemoved, &event.TaskPayload{Label: label})
}

// SetCountdown updates the displayed countdown of an entry
func (l *Ledger) SetCountdown(label string, remaining time.Duration) {
	i := l.index(label)
	if i < 0 {
		return
	}
	if remaining < 0 {
		remaining = 0
	}
	l.entries[i].Countdown = remaining
	l.entries[i].HasCountdown = true

	l.sink.Emit(event.EventTaskCountdown, &event.TaskPayload{
		Label:     label,
		Blinking:  l.entries[i].Blinking,
		Remaining: remaining,
	})
}

// GetEntries returns a copy of the entries in insertion order
func (l *Ledger) GetEntries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Has reports whether label is present
func (l *Ledger) Has(label string) bool {
	return l.index(label) >= 0
}

// Len returns the number of entries
func (l *Ledger) Len() int {
	return len(l.entries)
}

func (l *Ledger) index(label string) int {
	for i := range l.entries {
		if l.entries[i].Label == label {
			return i
		}
	}
	return -1
}

func (l *Ledger) publish() {
	if l.statCount != nil {
		l.statCount.Store(int64(len(l.entries)))
	}
}
