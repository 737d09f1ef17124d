package audio

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/event"
)

// Handler routes sound requests to a Player
type Handler struct {
	player Player
}

// NewHandler creates a handler bound to player
func NewHandler(player Player) *Handler {
	return &Handler{player: player}
}

// EventTypes implements event.Handler
func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

// HandleEvent implements event.Handler
func (h *Handler) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		logrus.WithField("payload", ev.Payload).Warn("audio: malformed sound request")
		return
	}
	h.player.Play(p.Sound)
}
