package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/status"
)

// Namespace prefixes every exported series
const Namespace = "crunch_time"

// Collector exports a status.Registry as gauges at scrape time
// Numeric cells become one gauge each; string cells become a labeled state gauge
type Collector struct {
	reg       *status.Registry
	stateDesc *prometheus.Desc
}

// NewCollector creates a collector over reg
func NewCollector(reg *status.Registry) *Collector {
	return &Collector{
		reg: reg,
		stateDesc: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "state"),
			"String-valued session state, value carried as a label",
			[]string{"key", "value"}, nil,
		),
	}
}

// MetricName maps a registry key to a series name: "track.depletion" -> "crunch_time_track_depletion"
func MetricName(key string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(key) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return prometheus.BuildFQName(Namespace, "", b.String())
}

// Describe implements prometheus.Collector
// Registry keys appear at runtime, so the collector is unchecked
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Numeric(func(key string, val float64) {
		desc := prometheus.NewDesc(MetricName(key), "Session gauge "+key, nil, nil)
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, val)
	})
	c.reg.Strings.Range(func(key string, s *status.AtomicString) {
		ch <- prometheus.MustNewConstMetric(c.stateDesc, prometheus.GaugeValue, 1, key, s.Load())
	})
}

// EventCounter counts routed game events by type
type EventCounter struct {
	counter *prometheus.CounterVec
}

// NewEventCounter creates the crunch_time_events_total counter
func NewEventCounter() *EventCounter {
	return &EventCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "events_total",
			Help:      "Game events routed by type",
		}, []string{"type"}),
	}
}

// Collector returns the underlying counter for registration
func (e *EventCounter) Collector() prometheus.Collector {
	return e.counter
}

// EventTypes implements event.Handler; no types means every event
func (e *EventCounter) EventTypes() []event.EventType { return nil }

// HandleEvent implements event.Handler
func (e *EventCounter) HandleEvent(ev event.GameEvent) {
	e.counter.WithLabelValues(ev.Type.String()).Inc()
}
