package network

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/engine"
	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/status"
)

// SnapshotSource produces session state for the feed
type SnapshotSource interface {
	Snapshot() engine.Snapshot
}

// Hub maintains the set of spectators and broadcasts frames to them
// Broadcast never blocks; frames are dropped when the hub backlog is full
type Hub struct {
	cfg       *Config
	sessionID string

	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex

	seq     atomic.Uint64
	dropped atomic.Uint64

	statPeers *atomic.Int64
}

// NewHub initializes a spectator hub for one session
func NewHub(cfg *Config, sessionID string, reg *status.Registry) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Hub{
		cfg:        cfg,
		sessionID:  sessionID,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, cfg.SendQueueSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		statPeers:  reg.Ints.Get(status.KeySpectators),
	}
}

// Run handles client membership and fan-out until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.statPeers.Store(0)
			h.mu.Unlock()
			logrus.Info("network: spectator hub shutting down")
			return

		case client := <-h.register:
			h.mu.Lock()
			if len(h.clients) >= h.cfg.MaxPeers {
				h.mu.Unlock()
				close(client.send)
				logrus.WithField("max", h.cfg.MaxPeers).Warn("network: spectator rejected, hub full")
				continue
			}
			h.clients[client] = true
			n := len(h.clients)
			h.statPeers.Store(int64(n))
			h.mu.Unlock()

			if hello, err := encode(Message{Type: MsgHello, Seq: h.seq.Add(1)}, HelloPayload{SessionID: h.sessionID, Peers: n}); err == nil {
				client.send <- hello
			}
			logrus.WithField("peers", n).Info("network: spectator connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.statPeers.Store(int64(len(h.clients)))
				logrus.WithField("peers", len(h.clients)).Info("network: spectator disconnected")
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.statPeers.Store(int64(len(h.clients)))
			h.mu.Unlock()
		}
	}
}

// join hands a client to Run, false once the hub has stopped
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// leave hands a client back to Run for removal
func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues a frame for every spectator, false when dropped
func (h *Hub) Broadcast(message []byte) bool {
	select {
	case h.broadcast <- message:
		return true
	default:
		h.dropped.Add(1)
		return false
	}
}

// PublishSnapshot encodes and broadcasts a snapshot
func (h *Hub) PublishSnapshot(snap engine.Snapshot) {
	data, err := encodeSnapshot(h.seq.Add(1), snap)
	if err != nil {
		logrus.WithError(err).Error("network: snapshot encode failed")
		return
	}
	h.Broadcast(data)
}

// Feed publishes snapshots from src every BroadcastInterval until ctx is cancelled
func (h *Hub) Feed(ctx context.Context, src SnapshotSource) {
	ticker := time.NewTicker(h.cfg.BroadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if h.Count() == 0 {
				continue
			}
			h.PublishSnapshot(src.Snapshot())
		}
	}
}

// Count returns connected spectators
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns frames discarded because the hub backlog was full
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// EventTypes implements event.Handler; milestones are forwarded as they happen
func (h *Hub) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventIterationStarted,
		event.EventIterationCompleted,
		event.EventIterationSalvaged,
		event.EventManagerCallStarted,
		event.EventManagerCallMissed,
		event.EventPuzzleSolved,
		event.EventGamePaused,
		event.EventCatScared,
		event.EventGameLost,
	}
}

// HandleEvent implements event.Handler
// Runs inside the session dispatch, so it only encodes and enqueues
func (h *Hub) HandleEvent(ev event.GameEvent) {
	data, err := encodeEvent(h.seq.Add(1), ev)
	if err != nil {
		logrus.WithError(err).WithField("event", ev.Type.String()).Warn("network: event encode failed")
		return
	}
	h.Broadcast(data)
}
