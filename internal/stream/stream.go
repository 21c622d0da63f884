// Package stream implements exact-length I/O over a reliable byte
// stream. Every higher protocol layer is built on these two calls.
package stream

import (
	"errors"
	"fmt"
	"io"
)

// ErrClosed reports an orderly shutdown by the peer before the
// requested number of bytes was transferred. It is terminal for the
// session: bytes earlier in the same call may already have reached the
// peer, so callers must abort the phase rather than retry.
var ErrClosed = errors.New("stream closed by peer")

// WriteFull writes all of buf, looping over partial writes. It returns
// ErrClosed if the stream makes no progress, or the underlying write
// error wrapped.
func WriteFull(w io.Writer, buf []byte) error {
	total := 0
	for total < len(buf) {
		n, err := w.Write(buf[total:])
		if err != nil {
			if errors.Is(err, io.ErrClosedPipe) || errors.Is(err, io.EOF) {
				return ErrClosed
			}
			return fmt.Errorf("write: %w", err)
		}
		if n == 0 {
			return ErrClosed
		}
		total += n
	}
	return nil
}

// ReadFull fills all of buf, looping over partial reads. End of stream
// before buf is full reports ErrClosed; any other read error is
// wrapped.
func ReadFull(r io.Reader, buf []byte) error {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if total == len(buf) {
			return nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
				return ErrClosed
			}
			return fmt.Errorf("read: %w", err)
		}
		if n == 0 {
			return ErrClosed
		}
	}
	return nil
}
