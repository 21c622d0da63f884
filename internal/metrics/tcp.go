package metrics

import "time"

// TCPStats captures sender-side TCP metrics from the kernel.
type TCPStats struct {
	Retransmits  uint64
	SegmentsSent uint64
	// KernelRTT is the kernel's smoothed RTT for the connection. It is
	// informational only; the protocol's own estimate drives the
	// throughput correction.
	KernelRTT time.Duration
}
