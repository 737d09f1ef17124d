package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/crunch-time/parameter"
)

func TestTimeProvider(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestStepSource(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	src := NewStepSource(start)

	if !src.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, src.Now())
	}

	src.Advance(90 * time.Minute)
	src.Ticks(4)
	if want := start.Add(90*time.Minute + 4*parameter.GameUpdateInterval); !src.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, src.Now())
	}
}

func TestPausableClockStopsDuringPause(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewStepSource(start)
	clock := NewPausableClockWithSource(mock)

	mock.Advance(10 * time.Second)
	if got := clock.Now().Sub(start); got != 10*time.Second {
		t.Errorf("Expected 10s game time, got %v", got)
	}

	clock.Pause()
	clock.Pause()
	mock.Advance(5 * time.Second)
	if got := clock.Now().Sub(start); got != 10*time.Second {
		t.Errorf("Expected frozen 10s during pause, got %v", got)
	}
	if got := clock.GetTotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s paused so far, got %v", got)
	}

	clock.Resume()
	mock.Advance(2 * time.Second)
	if got := clock.Now().Sub(start); got != 12*time.Second {
		t.Errorf("Expected 12s game time after resume, got %v", got)
	}
	if !clock.RealTime().Equal(start.Add(17 * time.Second)) {
		t.Errorf("Expected real time unaffected by pause, got %v", clock.RealTime())
	}
}
