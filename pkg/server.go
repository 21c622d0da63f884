package iperfer

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/lamdaham/eecs489-p1/internal/engine"
	"github.com/lamdaham/eecs489-p1/internal/metrics"
	"github.com/lamdaham/eecs489-p1/internal/protocol"
	"github.com/lamdaham/eecs489-p1/internal/transport"
	"github.com/lamdaham/eecs489-p1/internal/util"
)

// RunServer listens, accepts exactly one client, and drives one full
// measurement session. The listener is closed after the accept and the
// connection on every exit path; the server never loops for more
// clients.
func RunServer(ctx context.Context, cfg ServerConfig) (*Results, error) {
	cfg.setDefaults()
	ln, err := transport.Listen(ctx, cfg.Port)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Info("iPerfer server started", "port", cfg.Port)
	conn, err := transport.AcceptOne(ln)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	cfg.Logger.Info("client connected", "addr", conn.RemoteAddr())
	return ServerSession(conn, cfg)
}

// ServerSession drives the passive role over an established stream:
// answer each RTT probe, receive chunks until the client stops
// sending, then report. The client closing the stream is the normal
// end of the transfer phase.
func ServerSession(conn io.ReadWriter, cfg ServerConfig) (*Results, error) {
	cfg.setDefaults()
	id := uuid.New().String()
	logger := cfg.Logger.With("session", id, "role", RoleServer)

	logger.Debug("rtt probe started", "exchanges", cfg.Exchanges)
	sampler, err := metrics.ProbeServer(conn, cfg.Exchanges, protocol.DefaultEstimateWindow)
	if err != nil {
		logger.Error("rtt probe failed", "error", err)
		return nil, &PhaseError{Phase: PhaseRTTProbe, Err: err}
	}
	rtt := sampler.Estimate()
	logger.Debug("rtt probe complete", "estimate", rtt, "samples", sampler.Count())

	logger.Debug("transfer started", "chunk_size", cfg.ChunkSize)
	stats, err := engine.Receive(conn, engine.Config{ChunkSize: cfg.ChunkSize})
	if err != nil {
		logger.Error("transfer failed", "error", err, "chunks", stats.Chunks)
		return nil, &PhaseError{Phase: PhaseTransfer, Err: err}
	}

	tp := engine.ComputeThroughput(stats, rtt)
	results := &Results{
		SessionID:  id,
		Role:       RoleServer,
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
