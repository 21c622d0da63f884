package iperfer

import (
	"log/slog"
	"time"

	"github.com/lamdaham/eecs489-p1/internal/protocol"
)

const (
	// DefaultChunkSize is the payload bytes per stop-and-wait chunk.
	DefaultChunkSize = protocol.DefaultChunkSize
	// DefaultExchanges is the number of RTT probe/ack round trips.
	DefaultExchanges = protocol.DefaultExchanges
)

// ClientConfig defines parameters for the active measurement role.
type ClientConfig struct {
	// Host is the server to connect to.
	Host string
	// Port is the server port.
	Port int
	// Duration bounds the transfer phase. Must be > 0.
	Duration time.Duration
	// ChunkSize is the bytes per chunk (default 80000).
	ChunkSize int
	// Exchanges is the number of RTT probe/ack round trips (default 8).
	Exchanges int
	// Logger receives session diagnostics. Defaults to slog.Default.
	Logger *slog.Logger
}

// ServerConfig defines parameters for the passive measurement role.
type ServerConfig struct {
	// Port is the port to listen on.
	Port int
	// ChunkSize is the bytes per chunk (default 80000).
	ChunkSize int
	// Exchanges is the number of RTT probe/ack round trips (default 8).
	Exchanges int
	// Logger receives session diagnostics. Defaults to slog.Default.
	Logger *slog.Logger
}

func (cfg *ClientConfig) setDefaults() {
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.Exchanges == 0 {
		cfg.Exchanges = DefaultExchanges
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
}

func (cfg *ServerConfig) setDefaults() {
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.Exchanges == 0 {
		cfg.Exchanges = DefaultExchanges
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
}
