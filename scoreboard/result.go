package scoreboard

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoResults is returned when the board holds no sessions
var ErrNoResults = errors.New("scoreboard: no results")

// Result is one finished session
type Result struct {
	ID           string        `json:"id"`
	SessionID    string        `json:"session_id"`
	Seed         int64         `json:"seed"`
	Scene        string        `json:"scene"`
	GameCount    int           `json:"game_count"`
	SuccessCount int           `json:"success_count"`
	Cause        string        `json:"cause"`
	Completion   float64       `json:"completion"`
	Duration     time.Duration `json:"duration"`
	FinishedAt   time.Time     `json:"finished_at"`
}

// Score orders results: successes first, then games, then survival time
func (r Result) Score() float64 {
	return float64(r.SuccessCount)*1e6 + float64(r.GameCount)*1e3 + r.Duration.Seconds()
}

// String is the failure-screen line for a result
func (r Result) String() string {
	return fmt.Sprintf("%d wins / %d games  %s  (%s)",
		r.SuccessCount, r.GameCount, r.Duration.Truncate(time.Second), r.Cause)
}
