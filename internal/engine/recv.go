package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/lamdaham/eecs489-p1/internal/protocol"
	"github.com/lamdaham/eecs489-p1/internal/stream"
)

// Receive runs the server side of the transfer phase: one full chunk,
// then one ack byte, with no duration bound of its own. The client
// closing at the end of its duration surfaces as a chunk-read failure,
// which is the normal end of the phase; the attempt that failed is not
// counted. A failed ack send aborts the session instead.
func Receive(rw io.ReadWriter, cfg Config) (TransferStats, error) {
	buf := make([]byte, cfg.ChunkSize)
	ack := []byte{protocol.AckByte}
	var stats TransferStats
	start := time.Now()
	for {
		if err := stream.ReadFull(rw, buf); err != nil {
			break
		}
		stats.Bytes += int64(cfg.ChunkSize)
		stats.Chunks++
		if err := stream.WriteFull(rw, ack); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, fmt.Errorf("chunk ack send: %w", err)
		}
	}
	stats.Elapsed = time.Since(start)
	return stats, nil
}
