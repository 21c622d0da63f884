package stream

import (
	"bytes"
	"errors"
	"net"
	"testing"
	"testing/iotest"
)

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReadFullExact(t *testing.T) {
	src := bytes.NewReader([]byte("abcdefgh"))
	buf := make([]byte, 8)
	if err := ReadFull(src, buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(buf) != "abcdefgh" {
		t.Fatalf("expected abcdefgh, got %q", buf)
	}
}

func TestReadFullShortStream(t *testing.T) {
	src := bytes.NewReader([]byte("abc"))
	buf := make([]byte, 8)
	err := ReadFull(src, buf)
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestReadFullEmptyStream(t *testing.T) {
	src := bytes.NewReader(nil)
	buf := make([]byte, 1)
	if err := ReadFull(src, buf); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestReadFullHardError(t *testing.T) {
	hard := errors.New("connection reset")
	src := &failingReader{data: []byte("ab"), err: hard}
	buf := make([]byte, 8)
	err := ReadFull(src, buf)
	if err == nil || errors.Is(err, ErrClosed) {
		t.Fatalf("expected hard error, got %v", err)
	}
	if !errors.Is(err, hard) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestReadFullSpansPartialReads(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		server.Write([]byte("abcd"))
		server.Write([]byte("efgh"))
	}()

	buf := make([]byte, 8)
	if err := ReadFull(client, buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(buf) != "abcdefgh" {
		t.Fatalf("expected abcdefgh, got %q", buf)
	}
}

func TestWriteFullExact(t *testing.T) {
	var dst bytes.Buffer
	if err := WriteFull(&dst, []byte("abcdefgh")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst.String() != "abcdefgh" {
		t.Fatalf("expected abcdefgh, got %q", dst.String())
	}
}

func TestWriteFullClosedPeer(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	server.Close()

	err := WriteFull(client, []byte("abcdefgh"))
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestReadFullPartialThenEOFCompletes(t *testing.T) {
	// A reader may return the final bytes together with io.EOF; a full
	// buffer is a success regardless.
	src := iotest.DataErrReader(bytes.NewReader([]byte("abcd")))
	buf := make([]byte, 4)
	if err := ReadFull(src, buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
