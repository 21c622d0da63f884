package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/lamdaham/eecs489-p1/internal/protocol"
	"github.com/lamdaham/eecs489-p1/internal/stream"
)

// Send runs the client side of the transfer phase: one full chunk,
// then block for its one-byte ack, until cfg.Duration has elapsed.
// The returned stats are valid even when err is non-nil; a chunk whose
// send completed stays counted even if its ack wait fails, since the
// send itself succeeded. I/O failures are never retried.
func Send(rw io.ReadWriter, cfg Config) (TransferStats, error) {
	chunk := make([]byte, cfg.ChunkSize) // content is opaque, zero-filled
	ack := make([]byte, protocol.MarkerSize)
	var stats TransferStats
	start := time.Now()
	for time.Since(start) < cfg.Duration {
		if err := stream.WriteFull(rw, chunk); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, fmt.Errorf("chunk send: %w", err)
		}
		stats.Bytes += int64(cfg.ChunkSize)
		stats.Chunks++
		if err := stream.ReadFull(rw, ack); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, fmt.Errorf("chunk ack receive: %w", err)
		}
	}
	stats.Elapsed = time.Since(start)
	return stats, nil
}
