package network

import (
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/crunch-time/engine"
	"github.com/lixenwraith/crunch-time/event"
)

// MessageType identifies the semantic meaning of a frame
type MessageType string

const (
	MsgSnapshot MessageType = "snapshot" // Full session state
	MsgEvent    MessageType = "event"    // Routed game event
	MsgHello    MessageType = "hello"    // First frame to a new spectator
)

// Message is the JSON frame sent to spectators
type Message struct {
	Type    MessageType     `json:"type"`
	Seq     uint64          `json:"seq"`
	Event   string          `json:"event,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// HelloPayload greets a spectator
type HelloPayload struct {
	SessionID string `json:"session_id"`
	Peers     int    `json:"peers"`
}

// encodeSnapshot frames a snapshot
func encodeSnapshot(seq uint64, snap engine.Snapshot) ([]byte, error) {
	return encode(Message{Type: MsgSnapshot, Seq: seq}, snap)
}

// encodeEvent frames a game event with its payload
func encodeEvent(seq uint64, ev event.GameEvent) ([]byte, error) {
	return encode(Message{Type: MsgEvent, Seq: seq, Event: ev.Type.String()}, ev.Payload)
}

func encode(msg Message, payload any) ([]byte, error) {
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", msg.Type, err)
		}
		msg.Payload = raw
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", msg.Type, err)
	}
	return data, nil
}

// Decode parses a frame; used by spectator clients and tests
func Decode(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("decode frame: %w", err)
	}
	return msg, nil
}
