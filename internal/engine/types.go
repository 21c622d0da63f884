// Package engine implements the stop-and-wait transfer phase and the
// throughput computation derived from it. One chunk is always followed
// by one ack wait, which serializes the data phase with the RTT
// phase's timing unit; the throughput computation subtracts that
// waiting time back out.
package engine

import "time"

// Config carries the transfer parameters. Reference values live in
// internal/protocol; tests substitute small synthetic ones.
type Config struct {
	// ChunkSize is the payload bytes per stop-and-wait chunk. Partial
	// chunks are never counted.
	ChunkSize int
	// Duration bounds the client send loop. Elapsed time is checked
	// only between chunks, never mid-chunk. Ignored by Receive.
	Duration time.Duration
}

// TransferStats is mutated only by the transfer loops and read-only
// afterward.
type TransferStats struct {
	// Bytes is the total payload moved. Always Chunks*ChunkSize.
	Bytes int64
	// Chunks is the number of fully transferred chunks.
	Chunks int
	// Elapsed is the wall-clock time of the transfer phase.
	Elapsed time.Duration
}
