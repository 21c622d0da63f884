package iperfer

import (
	"fmt"
	"time"
)

// Role selects which side of the measurement a process runs. Fixed for
// the lifetime of a process.
type Role string

const (
	RoleServer Role = "server"
	RoleClient Role = "client"
)

// Results is the sole output of a session that reached Report.
// Immutable once produced.
type Results struct {
	// SessionID tags all diagnostics of one measurement session.
	SessionID string
	// Role is the side that produced these results.
	Role Role
	// TotalKB is the payload moved, in decimal kilobytes.
	TotalKB int64
	// RateMbps is the corrected throughput in megabits per second.
	RateMbps float64
	// RTTMillis is this side's RTT estimate rounded to whole
	// milliseconds. Client and server measure structurally different
	// intervals and never reconcile them.
	RTTMillis int
	// NetSeconds is the transfer wall time minus ack-wait overhead.
	NetSeconds float64
	// Bytes and Chunks describe the transfer phase.
	Bytes  int64
	Chunks int
	// Elapsed is the uncorrected transfer phase wall time.
	Elapsed time.Duration
	// RTTSamples is the number of samples behind the estimate.
	RTTSamples int
	// Retransmits and SegmentsSent come from the kernel's TCP_INFO
	// when available, zero otherwise.
	Retransmits  uint64
	SegmentsSent uint64
}

// Summary returns the role-appropriate report line.
func (r *Results) Summary() string {
	verb := "Sent"
	if r.Role == RoleServer {
		verb = "Received"
	}
	return fmt.Sprintf("%s=%d KB, Rate=%.3f Mbps, RTT=%dms", verb, r.TotalKB, r.RateMbps, r.RTTMillis)
}
