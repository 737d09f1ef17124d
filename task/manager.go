package task

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/parameter"
)

// MissedCallHandler receives expired manager calls, implemented by the progression arbiter
type MissedCallHandler interface {
	OnManagerCallMissed()
}

// CooldownStarter is the slot hosting a manager call
type CooldownStarter interface {
	StartCooldown()
}

// ManagerTask is the functional countdown behind the manager ledger entry
// It is the single authority for the call timer; the ledger only mirrors it
type ManagerTask struct {
	slot      string
	active    bool
	remaining time.Duration

	ledger  *Ledger
	handler MissedCallHandler
	owner   CooldownStarter
	sink    event.Sink
}

// NewManagerTask creates an idle countdown bound to the ledger and the missed-call handler
func NewManagerTask(slot string, ledger *Ledger, handler MissedCallHandler, sink event.Sink) *ManagerTask {
	if sink == nil {
		sink = event.Discard
	}
	return &ManagerTask{
		slot:    slot,
		ledger:  ledger,
		handler: handler,
		sink:    sink,
	}
}

// Bind sets the slot that enters cooldown when the call expires
func (m *ManagerTask) Bind(owner CooldownStarter) {
	m.owner = owner
}

// Name returns system's name
func (m *ManagerTask) Name() string {
	return "manager_call"
}

// Priority returns the system's priority
func (m *ManagerTask) Priority() int {
	return parameter.PriorityManager
}

// Start replaces any running countdown without firing it and begins a new one
func (m *ManagerTask) Start(duration time.Duration) {
	if duration <= 0 {
		duration = parameter.ManagerCallDuration
	}
	m.active = true
	m.remaining = duration
	if m.ledger != nil {
		m.ledger.SetCountdown(core.LabelManager, duration)
	}
	m.sink.Emit(event.EventManagerCallStarted, &event.ManagerCallPayload{Slot: m.slot, Remaining: duration})
}

// Cancel stops the countdown without reporting a miss
func (m *ManagerTask) Cancel() {
	if !m.active {
		return
	}
	m.active = false
	m.sink.Emit(event.EventManagerCallCancelled, &event.ManagerCallPayload{Slot: m.slot, Remaining: m.remaining})
}

// Update advances the countdown, expiring at most once per Start
func (m *ManagerTask) Update(dt time.Duration) {
	if !m.active {
		return
	}

	m.remaining -= dt
	if m.remaining > 0 {
		if m.ledger != nil {
			m.ledger.SetCountdown(core.LabelManager, m.remaining)
		}
		return
	}

	// Deactivate before callbacks so re-entrant StartCooldown/Cancel see an idle task
	m.active = false
	m.remaining = 0
	logrus.WithField("slot", m.slot).Info("manager call missed")
	m.sink.Emit(event.EventManagerCallMissed, &event.ManagerCallPayload{Slot: m.slot})

	if m.handler != nil {
		m.handler.OnManagerCallMissed()
	}
	if m.ledger != nil {
		m.ledger.RemoveTask(core.LabelManager)
	}
	if m.owner != nil {
		m.owner.StartCooldown()
	}
}

// Active reports a running countdown
func (m *ManagerTask) Active() bool {
	return m.active
}

// Remaining returns the time left on the running countdown
func (m *ManagerTask) Remaining() time.Duration {
	if !m.active {
		return 0
	}
	return m.remaining
}
