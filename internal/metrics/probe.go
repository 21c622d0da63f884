package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/lamdaham/eecs489-p1/internal/protocol"
	"github.com/lamdaham/eecs489-p1/internal/stream"
)

// ProbeClient runs the active side of the RTT phase: for each
// exchange it sends one probe byte, blocks for the ack byte, and
// records the round-trip time. A full run yields exactly exchanges
// samples.
func ProbeClient(rw io.ReadWriter, exchanges, window int) (*Sampler, error) {
	s := NewSampler(window)
	probe := []byte{protocol.ProbeByte}
	ack := make([]byte, protocol.MarkerSize)
	for i := 0; i < exchanges; i++ {
		start := time.Now()
		if err := stream.WriteFull(rw, probe); err != nil {
			return s, fmt.Errorf("rtt probe send: %w", err)
		}
		if err := stream.ReadFull(rw, ack); err != nil {
			return s, fmt.Errorf("rtt ack receive: %w", err)
		}
		s.Add(time.Since(start))
	}
	return s, nil
}

// ProbeServer runs the passive side: it blocks for each probe byte and
// answers with an ack. From the second exchange on, the delta between
// the current receive and the previous post-ack timestamp is recorded,
// so a full run yields exchanges-1 samples. This interval is measured
// from the passive side and is not the same quantity the client
// measures; the two estimates are never reconciled.
func ProbeServer(rw io.ReadWriter, exchanges, window int) (*Sampler, error) {
	s := NewSampler(window)
	probe := make([]byte, protocol.MarkerSize)
	ack := []byte{protocol.AckByte}
	var lastAck time.Time
	for i := 0; i < exchanges; i++ {
		if err := stream.ReadFull(rw, probe); err != nil {
			return s, fmt.Errorf("rtt probe receive: %w", err)
		}
		if !lastAck.IsZero() {
			s.Add(time.Since(lastAck))
		}
		if err := stream.WriteFull(rw, ack); err != nil {
			return s, fmt.Errorf("rtt ack send: %w", err)
		}
		lastAck = time.Now()
	}
	return s, nil
}
