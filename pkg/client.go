package iperfer

import (
	"context"
	"io"
	"log/slog"
	"net"

	"github.com/google/uuid"
	"github.com/lamdaham/eecs489-p1/internal/engine"
	"github.com/lamdaham/eecs489-p1/internal/metrics"
	"github.com/lamdaham/eecs489-p1/internal/protocol"
	"github.com/lamdaham/eecs489-p1/internal/transport"
	"github.com/lamdaham/eecs489-p1/internal/util"
)

// RunClient connects to the server and drives one full measurement
// session. The connection is closed on every exit path.
func RunClient(ctx context.Context, cfg ClientConfig) (*Results, error) {
	cfg.setDefaults()
	conn, err := transport.Dial(ctx, cfg.Host, cfg.Port)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	cfg.Logger.Info("connected", "addr", conn.RemoteAddr())
	return ClientSession(conn, cfg)
}

// ClientSession drives the active role over an established stream:
// the RTT probe phase, the duration-bounded stop-and-wait transfer,
// then the throughput report. Phases run strictly in order; a failure
// in either phase ends the session without a report.
func ClientSession(conn io.ReadWriter, cfg ClientConfig) (*Results, error) {
	cfg.setDefaults()
	id := uuid.New().String()
	logger := cfg.Logger.With("session", id, "role", RoleClient)

	logger.Debug("rtt probe started", "exchanges", cfg.Exchanges)
	sampler, err := metrics.ProbeClient(conn, cfg.Exchanges, protocol.DefaultEstimateWindow)
	if err != nil {
		logger.Error("rtt probe failed", "error", err)
		return nil, &PhaseError{Phase: PhaseRTTProbe, Err: err}
	}
	rtt := sampler.Estimate()
	logger.Debug("rtt probe complete", "estimate", rtt, "samples", sampler.Count())

	logger.Debug("transfer started", "duration", cfg.Duration, "chunk_size", cfg.ChunkSize)
	stats, err := engine.Send(conn, engine.Config{ChunkSize: cfg.ChunkSize, Duration: cfg.Duration})
	if err != nil {
		logger.Error("transfer failed", "error", err, "chunks", stats.Chunks)
		return nil, &PhaseError{Phase: PhaseTransfer, Err: err}
	}

	tp := engine.ComputeThroughput(stats, rtt)
	results := &Results{
		SessionID:  id,
		Role:       RoleClient,
		TotalKB:    tp.TotalKB,
		RateMbps:   tp.RateMbps,
		RTTMillis:  tp.RTTMillis,
		NetSeconds: tp.NetSeconds,
		Bytes:      stats.Bytes,
		Chunks:     stats.Chunks,
		Elapsed:    stats.Elapsed,
		RTTSamples: sampler.Count(),
	}
	attachTCPStats(logger, conn, results)
	logger.Info("transfer complete",
		"rate", util.FormatBitsPerSecond(tp.RateMbps*1e6),
		"bytes", util.FormatBytes(float64(stats.Bytes)),
		"chunks", stats.Chunks)
	return results, nil
}

// attachTCPStats folds kernel TCP_INFO counters into the results when
// the stream is a real TCP connection. Best effort.
func attachTCPStats(logger *slog.Logger, conn io.ReadWriter, results *Results) {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return
	}
	tcpStats, err := metrics.ReadTCPStats(tcpConn)
	if err != nil {
		logger.Debug("kernel tcp stats unavailable", "error", err)
		return
	}
	results.Retransmits = tcpStats.Retransmits
	results.SegmentsSent = tcpStats.SegmentsSent
	logger.Debug("kernel tcp stats",
		"retransmits", tcpStats.Retransmits,
		"segments_sent", tcpStats.SegmentsSent,
		"kernel_rtt", tcpStats.KernelRTT)
}
