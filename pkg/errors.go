package iperfer

import "fmt"

// Phase identifies a protocol phase for diagnostics and errors.
type Phase string

const (
	PhaseRTTProbe Phase = "rtt probe"
	PhaseTransfer Phase = "transfer"
)

// PhaseError reports a mid-protocol I/O failure. The session is over,
// the connection is released, and no summary is produced. These
// failures are never retried: stop-and-wait has no retransmission
// semantics.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
