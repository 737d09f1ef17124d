package network

import (
	"time"

	"github.com/lixenwraith/crunch-time/parameter"
)

// Config holds spectator feed configuration
type Config struct {
	// Address to bind; empty disables the feed
	Address string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout time.Duration
	PongWait     time.Duration
	PingPeriod   time.Duration

	// BroadcastInterval is the gap between snapshot frames
	BroadcastInterval time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
	MaxMessageSize  int64
}

// DefaultConfig returns defaults for a local spectator feed
func DefaultConfig() *Config {
	pong := 60 * time.Second
	return &Config{
		Address:           "",
		MaxPeers:          16,
		WriteTimeout:      parameter.SpectatorWriteTimeout,
		PongWait:          pong,
		PingPeriod:        pong * 9 / 10,
		BroadcastInterval: parameter.GameUpdateInterval * parameter.SpectatorBroadcastEvery,
		ReadBufferSize:    1024,
		WriteBufferSize:   4096,
		SendQueueSize:     parameter.SpectatorSendBuffer,
		MaxMessageSize:    512,
	}
}
