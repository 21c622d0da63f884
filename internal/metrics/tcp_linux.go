//go:build linux

package metrics

import (
	"fmt"
	"net"
	"time"

	"golang.org/x/sys/unix"
)

// ReadTCPStats reads TCP_INFO from the connection. Best effort: the
// session reports these numbers only when the kernel provides them.
func ReadTCPStats(conn *net.TCPConn) (TCPStats, error) {
	rawConn, err := conn.SyscallConn()
	if err != nil {
		return TCPStats{}, fmt.Errorf("syscall conn: %w", err)
	}

	var info *unix.TCPInfo
	var sockErr error
	if err := rawConn.Control(func(fd uintptr) {
		info, sockErr = unix.GetsockoptTCPInfo(int(fd), unix.IPPROTO_TCP, unix.TCP_INFO)
	}); err != nil {
		return TCPStats{}, fmt.Errorf("control syscall: %w", err)
	}
	if sockErr != nil {
		return TCPStats{}, fmt.Errorf("getsockopt TCP_INFO: %w", sockErr)
	}
	if info == nil {
		return TCPStats{}, fmt.Errorf("getsockopt TCP_INFO: nil info")
	}

	segmentsSent := uint64(info.Data_segs_out)
	if segmentsSent == 0 {
		segmentsSent = uint64(info.Segs_out)
	}
	return TCPStats{
		Retransmits:  uint64(info.Total_retrans),
		SegmentsSent: segmentsSent,
		KernelRTT:    time.Duration(info.Rtt) * time.Microsecond,
	}, nil
}
