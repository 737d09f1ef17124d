package scoreboard

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/event"
)

// SessionInfo identifies the session whose results are recorded
type SessionInfo struct {
	SessionID string
	Seed      int64
	Scene     string
	Started   time.Time
}

// Recorder turns GameLost events into stored results
// HandleEvent runs inside the session dispatch and only enqueues; Run performs the I/O
type Recorder struct {
	store   Store
	info    SessionInfo
	now     func() time.Time
	pending chan Result
	saved   chan Result
}

// NewRecorder creates a recorder writing to store
func NewRecorder(store Store, info SessionInfo) *Recorder {
	return &Recorder{
		store:   store,
		info:    info,
		now:     time.Now,
		pending: make(chan Result, 4),
		saved:   make(chan Result, 4),
	}
}

// EventTypes implements event.Handler
func (r *Recorder) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameLost}
}

// HandleEvent implements event.Handler
func (r *Recorder) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.GameLostPayload)
	if !ok {
		logrus.WithField("payload", ev.Payload).Warn("scoreboard: malformed GameLost payload")
		return
	}

	finished := r.now()
	res := Result{
		ID:           uuid.NewString(),
		SessionID:    r.info.SessionID,
		Seed:         r.info.Seed,
		Scene:        r.info.Scene,
		GameCount:    p.GameCount,
		SuccessCount: p.SuccessCount,
		Cause:        p.Cause,
		Completion:   p.Completion,
		FinishedAt:   finished,
	}
	if !r.info.Started.IsZero() {
		res.Duration = finished.Sub(r.info.Started)
	}

	select {
	case r.pending <- res:
	default:
		logrus.WithField("id", res.ID).Warn("scoreboard: recorder backlog full, result dropped")
	}
}

// Run saves queued results until ctx is cancelled
func (r *Recorder) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case res := <-r.pending:
			saveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := r.store.Save(saveCtx, res)
			cancel()
			if err != nil {
				logrus.WithError(err).WithField("id", res.ID).Error("scoreboard: save failed")
				continue
			}
			logrus.WithFields(logrus.Fields{
				"id":        res.ID,
				"games":     res.GameCount,
				"successes": res.SuccessCount,
				"cause":     res.Cause,
			}).Info("scoreboard: result saved")

			select {
			case r.saved <- res:
			default:
			}
		}
	}
}

// Saved delivers results after they reach the store
func (r *Recorder) Saved() <-chan Result {
	return r.saved
}

// TopLines formats the best n results for display, empty on any error
func TopLines(ctx context.Context, store Store, n int) []string {
	results, err := store.Top(ctx, n)
	if err != nil {
		if !errors.Is(err, ErrNoResults) {
			logrus.WithError(err).Warn("scoreboard: top results unavailable")
		}
		return nil
	}
	lines := make([]string, len(results))
	for i, res := range results {
		lines[i] = res.String()
		if i < 9 {
			lines[i] = string(rune('1'+i)) + ". " + lines[i]
		} else {
			lines[i] = "-  " + lines[i]
		}
	}
	return lines
}
