package engine

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/parameter"
	"github.com/lixenwraith/crunch-time/status"
)

// diagnostics runs last each tick and publishes engine counters and the event backlog account
type diagnostics struct {
	ticks   uint64
	elapsed time.Duration
	queue   *event.EventQueue
	dropped uint64

	statTicks     *atomic.Int64
	statDelivered *atomic.Int64
	statDropped   *atomic.Int64
	statPeak      *atomic.Int64
	paused        *atomic.Bool
}

func newDiagnostics(reg *status.Registry, queue *event.EventQueue) *diagnostics {
	return &diagnostics{
		queue:         queue,
		statTicks:     reg.Ints.Get(status.KeyTicks),
		statDelivered: reg.Ints.Get(status.KeyEventsDelivered),
		statDropped:   reg.Ints.Get(status.KeyEventsDropped),
		statPeak:      reg.Ints.Get(status.KeyEventBacklogPeak),
		paused:        reg.Bools.Get(status.KeyPaused),
	}
}

func (d *diagnostics) Name() string { return "diagnostics" }

func (d *diagnostics) Priority() int { return parameter.PriorityDiagnostics }

func (d *diagnostics) Update(dt time.Duration) {
	d.ticks++
	d.elapsed += dt
	d.statTicks.Store(int64(d.ticks))

	st := d.queue.Stats()
	d.statDelivered.Store(int64(st.Delivered))
	d.statDropped.Store(int64(st.Dropped))
	d.statPeak.Store(int64(st.Peak))
	if st.Dropped > d.dropped {
		logrus.WithFields(logrus.Fields{"dropped": st.Dropped - d.dropped, "peak": st.Peak}).Warn("event backlog overflowed")
		d.dropped = st.Dropped
	}
}
