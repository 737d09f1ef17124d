package task

import (
	"testing"
	"time"

	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/event"
)

type missCounter struct{ n int }

func (m *missCounter) OnManagerCallMissed() { m.n++ }

type cooldownCounter struct{ n int }

func (c *cooldownCounter) StartCooldown() { c.n++ }

func newManagerFixture() (*ManagerTask, *Ledger, *missCounter, *cooldownCounter, *event.Recorder) {
	rec := &event.Recorder{}
	ledger := NewLedger(rec, nil)
	miss := &missCounter{}
	owner := &cooldownCounter{}
	m := NewManagerTask("manager", ledger, miss, rec)
	m.Bind(owner)
	return m, ledger, miss, owner, rec
}

func TestManagerTaskExpiresOnce(t *testing.T) {
	m, ledger, miss, owner, rec := newManagerFixture()
	ledger.AddTask(core.LabelManager)
	m.Start(time.Second)

	for i := 0; i < 40; i++ {
		m.Update(100 * time.Millisecond)
	}

	if miss.n != 1 {
		t.Errorf("Expected 1 missed call, got %d", miss.n)
	}
	if owner.n != 1 {
		t.Errorf("Expected 1 cooldown start, got %d", owner.n)
	}
	if ledger.Has(core.LabelManager) {
		t.Error("Expected manager entry removed on expiry")
	}
	if m.Active() {
		t.Error("Expected inactive after expiry")
	}
	if rec.Count(event.EventManagerCallMissed) != 1 {
		t.Errorf("Expected 1 missed event, got %d", rec.Count(event.EventManagerCallMissed))
	}
}

func TestManagerTaskCancelDoesNotFire(t *testing.T) {
	m, ledger, miss, owner, _ := newManagerFixture()
	ledger.AddTask(core.LabelManager)
	m.Start(time.Second)
	m.Update(500 * time.Millisecond)

	m.Cancel()
	m.Cancel()
	m.Update(2 * time.Second)

	if miss.n != 0 || owner.n != 0 {
		t.Errorf("Expected no side effects after cancel, got miss=%d cooldown=%d", miss.n, owner.n)
	}
}

func TestManagerTaskRestartReplacesCountdown(t *testing.T) {
	m, ledger, miss, _, _ := newManagerFixture()
	ledger.AddTask(core.LabelManager)
	m.Start(time.Second)
	m.Update(900 * time.Millisecond)

	m.Start(time.Second)
	m.Update(900 * time.Millisecond)
	if miss.n != 0 {
		t.Errorf("Expected restart to discard prior countdown, got %d misses", miss.n)
	}

	m.Update(200 * time.Millisecond)
	if miss.n != 1 {
		t.Errorf("Expected 1 miss after fresh countdown, got %d", miss.n)
	}
}

func TestManagerTaskMirrorsLedgerCountdown(t *testing.T) {
	m, ledger, _, _, _ := newManagerFixture()
	ledger.AddTask(core.LabelManager)
	m.Start(10 * time.Second)
	m.Update(3 * time.Second)

	if got := ledger.GetEntries()[0].Countdown; got != 7*time.Second {
		t.Errorf("Expected displayed countdown 7s, got %v", got)
	}
	if got := m.Remaining(); got != 7*time.Second {
		t.Errorf("Expected 7s remaining, got %v", got)
	}
}
