package engine

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/lamdaham/eecs489-p1/internal/protocol"
	"github.com/lamdaham/eecs489-p1/internal/stream"
)

const testChunkSize = 1000

func TestSendReceivePaired(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	serverDone := make(chan TransferStats, 1)
	go func() {
		stats, err := Receive(server, Config{ChunkSize: testChunkSize})
		if err != nil {
			t.Errorf("receive failed: %v", err)
		}
		serverDone <- stats
	}()

	sent, err := Send(client, Config{ChunkSize: testChunkSize, Duration: 150 * time.Millisecond})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	client.Close()
	recvd := <-serverDone

	if sent.Chunks == 0 {
		t.Fatalf("expected at least one chunk")
	}
	if sent.Bytes != int64(sent.Chunks)*testChunkSize {
		t.Fatalf("sent bytes %d do not match %d chunks", sent.Bytes, sent.Chunks)
	}
	if recvd.Chunks != sent.Chunks {
		t.Fatalf("server counted %d chunks, client sent %d", recvd.Chunks, sent.Chunks)
	}
	if recvd.Bytes != sent.Bytes {
		t.Fatalf("server counted %d bytes, client sent %d", recvd.Bytes, sent.Bytes)
	}
	if sent.Elapsed < 150*time.Millisecond {
		t.Fatalf("send returned before the duration elapsed: %v", sent.Elapsed)
	}
}

func TestSendZeroDuration(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	stats, err := Send(client, Config{ChunkSize: testChunkSize, Duration: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Chunks != 0 || stats.Bytes != 0 {
		t.Fatalf("expected no chunks for zero duration, got %+v", stats)
	}
}

func TestSendPeerClosesMidTransfer(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	const ackedChunks = 10
	go func() {
		buf := make([]byte, testChunkSize)
		for i := 0; i < ackedChunks; i++ {
			if err := stream.ReadFull(server, buf); err != nil {
				t.Errorf("peer read failed: %v", err)
				return
			}
			if err := stream.WriteFull(server, []byte{protocol.AckByte}); err != nil {
				t.Errorf("peer ack failed: %v", err)
				return
			}
		}
		// Accept one more chunk but never ack it: its send completed,
		// so the client still counts it.
		if err := stream.ReadFull(server, buf); err != nil {
			t.Errorf("peer read failed: %v", err)
		}
		server.Close()
	}()

	// Duration far beyond the peer's lifetime: the loop must end on the
	// I/O failure, not the clock.
	stats, err := Send(client, Config{ChunkSize: testChunkSize, Duration: time.Minute})
	if !errors.Is(err, stream.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if stats.Chunks != ackedChunks+1 {
		t.Fatalf("expected %d chunks counted, got %d", ackedChunks+1, stats.Chunks)
	}
	if stats.Bytes != int64(ackedChunks+1)*testChunkSize {
		t.Fatalf("unexpected bytes %d", stats.Bytes)
	}
}

func TestReceiveIgnoresPartialChunk(t *testing.T) {
	client, server := net.Pipe()

	go func() {
		ack := make([]byte, protocol.MarkerSize)
		chunk := make([]byte, testChunkSize)
		for i := 0; i < 2; i++ {
			stream.WriteFull(client, chunk)
			stream.ReadFull(client, ack)
		}
		// Half a chunk, then an orderly close: the partial transfer
		// must not be counted.
		stream.WriteFull(client, chunk[:testChunkSize/2])
		client.Close()
	}()

	stats, err := Receive(server, Config{ChunkSize: testChunkSize})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Chunks != 2 {
		t.Fatalf("expected 2 full chunks, got %d", stats.Chunks)
	}
	if stats.Bytes != 2*testChunkSize {
		t.Fatalf("expected %d bytes, got %d", 2*testChunkSize, stats.Bytes)
	}
	server.Close()
}

func TestReceiveEmptyStream(t *testing.T) {
	client, server := net.Pipe()
	client.Close()

	stats, err := Receive(server, Config{ChunkSize: testChunkSize})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Chunks != 0 || stats.Bytes != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
	server.Close()
}
