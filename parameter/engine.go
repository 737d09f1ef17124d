package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the game logic update interval (clock tick)
	GameUpdateInterval = 50 * time.Millisecond

	// MaxTickDelta caps a single tick after a stall so countdowns cannot skip whole phases
	MaxTickDelta = 250 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize bounds the backlog held between two dispatches
	EventQueueSize = 1024
)

// Spectator Feed
const (
	// SpectatorSendBuffer is the per-client outbound snapshot backlog
	SpectatorSendBuffer = 16

	// SpectatorWriteTimeout bounds a single websocket write
	SpectatorWriteTimeout = 2 * time.Second

	// SpectatorBroadcastEvery is the number of ticks between snapshot broadcasts
	SpectatorBroadcastEvery = 4
)
