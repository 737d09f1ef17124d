// Package status holds lock-free gauges written by the tick loop and read by
// the HUD, the diagnostics overlay and the Prometheus exporter.
package status

import "sync/atomic"

// Well-known keys
const (
	KeyTicks          = "engine.ticks"
	KeyPaused         = "engine.paused"
	KeyPhase          = "progression.phase"
	KeyGameCount      = "progression.game_count"
	KeySuccessCount   = "progression.success_count"
	KeyMissedCalls    = "progression.missed_calls"
	KeyDepletionRate  = "progression.depletion_rate"
	KeyDepletion      = "track.depletion"
	KeyCompletion     = "track.completion"
	KeyTaskCount      = "ledger.tasks"
	KeyPuzzlesSolved  = "puzzle.solved"
	KeyPuzzleMistakes = "puzzle.mistakes"
	KeySpectators     = "network.spectators"
	KeyLastLossCause  = "progression.last_loss"

	KeyEventsDelivered  = "events.delivered"
	KeyEventsDropped    = "events.dropped"
	KeyEventBacklogPeak = "events.backlog_peak"
)

// Registry groups metric maps by value type
// Components cache cell pointers at construction; Update loops write to the atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Numeric visits every bool, int and float cell as a float64, sorted within each map
// Strings are skipped; used by exporters that only understand numbers
func (r *Registry) Numeric(fn func(key string, val float64)) {
	r.Bools.Range(func(k string, b *atomic.Bool) {
		v := 0.0
		if b.Load() {
			v = 1
		}
		fn(k, v)
	})
	r.Ints.Range(func(k string, i *atomic.Int64) {
		fn(k, float64(i.Load()))
	})
	r.Floats.Range(func(k string, f *AtomicFloat) {
		fn(k, f.Get())
	})
}
