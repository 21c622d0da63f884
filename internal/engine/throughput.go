package engine

import (
	"math"
	"time"
)

// Throughput is the corrected measurement derived from one transfer
// phase. Immutable once computed.
type Throughput struct {
	// NetSeconds is wall-clock elapsed time minus the estimated
	// ack-wait overhead. Never negative: when the overhead overshoots
	// the measured wall time, the uncorrected elapsed time is used.
	NetSeconds float64
	// RateMbps is megabits per second over NetSeconds, approximating
	// one-way goodput as if chunks were pipelined.
	RateMbps float64
	// RTTMillis is the RTT estimate rounded to whole milliseconds.
	RTTMillis int
	// TotalKB is decimal kilobytes moved (bytes/1000).
	TotalKB int64
}

// ComputeThroughput subtracts one RTT of ack-wait per chunk from the
// wall-clock time and derives the rate. Pure: the same inputs always
// yield the same result.
func ComputeThroughput(stats TransferStats, rtt time.Duration) Throughput {
	elapsed := stats.Elapsed.Seconds()
	netSec := elapsed - float64(stats.Chunks)*rtt.Seconds()
	if netSec < 0 {
		netSec = elapsed
	}
	rate := 0.0
	if netSec > 0 {
		rate = float64(stats.Bytes) * 8 / netSec / 1e6
	}
	return Throughput{
		NetSeconds: netSec,
		RateMbps:   rate,
		RTTMillis:  int(math.Round(rtt.Seconds() * 1000)),
		TotalKB:    stats.Bytes / 1000,
	}
}
