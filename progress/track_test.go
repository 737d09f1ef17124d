package progress

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/crunch-time/event"
)

const tick = 50 * time.Millisecond

func newTrack(initial, speed float64) (*Track, *event.Recorder) {
	rec := &event.Recorder{}
	return New(Config{Name: "test", Initial: initial, DefaultSpeed: speed}, rec), rec
}

func runFor(tr *Track, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		tr.Update(tick)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTrackAnimatesLinearly(t *testing.T) {
	tr, rec := newTrack(0, 1)

	tr.SetProgress(1)
	if tr.GetIsEmpty() {
		t.Error("Expected not empty once animating")
	}

	runFor(tr, 500*time.Millisecond)
	if !approx(tr.GetProgress(), 0.5) {
		t.Errorf("Expected 0.5 halfway, got %v", tr.GetProgress())
	}

	runFor(tr, 600*time.Millisecond)
	if tr.GetProgress() != 1 {
		t.Errorf("Expected 1 at end, got %v", tr.GetProgress())
	}
	if tr.Animating() {
		t.Error("Expected animation finished")
	}
	if rec.Count(event.EventProgressCompleted) != 1 {
		t.Errorf("Expected 1 completion event, got %d", rec.Count(event.EventProgressCompleted))
	}
}

func TestTrackSpeedScalesDuration(t *testing.T) {
	tr, _ := newTrack(1, 1)

	// Depletion-style: 1/90 per second takes 90s to drain
	tr.SetProgress(0, 1.0/90)
	runFor(tr, 45*time.Second)
	if math.Abs(tr.GetProgress()-0.5) > 1e-6 {
		t.Errorf("Expected ~0.5 after 45s, got %v", tr.GetProgress())
	}
	if tr.GetIsEmpty() {
		t.Error("Expected not empty mid-drain")
	}
	runFor(tr, 46*time.Second)
	if !tr.GetIsEmpty() {
		t.Error("Expected empty after drain completes")
	}
}

func TestTrackClampsTarget(t *testing.T) {
	tr, _ := newTrack(0.5, 1)

	tr.SetProgress(1.7)
	runFor(tr, 2*time.Second)
	if tr.GetProgress() != 1 {
		t.Errorf("Expected clamp to 1, got %v", tr.GetProgress())
	}

	tr.SetProgress(-3)
	runFor(tr, 2*time.Second)
	if tr.GetProgress() != 0 {
		t.Errorf("Expected clamp to 0, got %v", tr.GetProgress())
	}
	if !tr.GetIsEmpty() {
		t.Error("Expected empty after settling at 0")
	}
}

func TestTrackEqualTargetIgnored(t *testing.T) {
	tr, _ := newTrack(0.3, 1)

	tr.SetProgress(0.3)
	if tr.Animating() {
		t.Error("Expected no animation for equal target")
	}
}

func TestTrackSetProgressCancelsInFlight(t *testing.T) {
	tr, _ := newTrack(0, 1)

	tr.SetProgress(1)
	runFor(tr, 500*time.Millisecond)
	tr.SetProgress(0)

	// New animation starts from the interrupted value
	runFor(tr, 500*time.Millisecond)
	if !approx(tr.GetProgress(), 0.25) {
		t.Errorf("Expected 0.25, got %v", tr.GetProgress())
	}
}

func TestTrackSetInstant(t *testing.T) {
	tr, rec := newTrack(0, 1)

	tr.SetProgress(0.8)
	tr.Update(tick)
	tr.SetInstantToOne()
	if tr.GetProgress() != 1 || tr.Animating() {
		t.Errorf("Expected instant 1 with no animation, got %v animating=%v", tr.GetProgress(), tr.Animating())
	}

	tr.SetInstant(0)
	if !tr.GetIsEmpty() {
		t.Error("Expected empty after instant zero")
	}
	ev, ok := rec.Last(event.EventProgressChanged)
	if !ok || ev.Payload.(*event.ProgressPayload).Value != 0 {
		t.Error("Expected change event with value 0")
	}
}

func TestTrackAddProgressAccumulates(t *testing.T) {
	tr, _ := newTrack(0, 1)

	tr.AddProgress(0.2, 20)
	tr.AddProgress(0.2, 20)
	if !approx(tr.Target(), 0.4) {
		t.Errorf("Expected pending target 0.4, got %v", tr.Target())
	}
	runFor(tr, time.Second)
	if !approx(tr.GetProgress(), 0.4) {
		t.Errorf("Expected 0.4, got %v", tr.GetProgress())
	}

	// Penalty floors at zero without going negative
	tr.AddProgress(-0.9, 20)
	runFor(tr, time.Second)
	if tr.GetProgress() != 0 {
		t.Errorf("Expected 0, got %v", tr.GetProgress())
	}
}

func TestTrackNegativeSpeedUsesMagnitude(t *testing.T) {
	tr, _ := newTrack(1, 1)

	tr.SetProgress(0, -2)
	runFor(tr, 600*time.Millisecond)
	if tr.GetProgress() != 0 {
		t.Errorf("Expected 0, got %v", tr.GetProgress())
	}
}

func TestTrackMisconfiguredDisabled(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		speed   float64
	}{
		{"initial above one", 1.5, 1},
		{"initial negative", -0.1, 1},
		{"initial NaN", math.NaN(), 1},
		{"zero speed", 0.5, 0},
		{"infinite speed", 0.5, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, rec := newTrack(tt.initial, tt.speed)
			if !tr.Disabled() {
				t.Fatal("Expected disabled track")
			}
			tr.SetProgress(1)
			tr.SetInstantToOne()
			tr.Update(time.Second)
			if tr.Animating() || len(rec.Events) != 0 {
				t.Error("Expected disabled track to ignore writes")
			}
		})
	}
}

func TestTrackFractionalCreditsSettleOnBounds(t *testing.T) {
	tr, _ := newTrack(0, 1)

	for _, p := range []float64{13, 21, 21, 21, 24} {
		tr.AddProgress(p/100, 20)
		runFor(tr, time.Second)
	}
	if tr.GetProgress() != 1 {
		t.Errorf("Expected exactly 1 after credits summing to 100%%, got %v", tr.GetProgress())
	}

	tr.SetInstant(0)
	tr.AddProgress(0.1, 20)
	tr.AddProgress(0.2, 20)
	tr.AddProgress(-0.3, 20)
	runFor(tr, time.Second)
	if tr.GetProgress() != 0 || !tr.GetIsEmpty() {
		t.Errorf("Expected settled empty bar, got %v empty=%v", tr.GetProgress(), tr.GetIsEmpty())
	}
}
