//go:build !linux

package metrics

import (
	"errors"
	"net"
)

// ReadTCPStats is unavailable off linux; callers treat the error as
// "no kernel stats".
func ReadTCPStats(conn *net.TCPConn) (TCPStats, error) {
	return TCPStats{}, errors.New("tcp stats not supported on this platform")
}
