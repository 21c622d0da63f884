// Package transport provides the connection setup collaborators. The
// protocol core consumes the connected streams these return and never
// creates sockets itself.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
)

// Dial connects to the measurement server. Setup errors are returned
// to the caller, which decides the exit behavior.
func Dial(ctx context.Context, host string, port int) (*net.TCPConn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("connect to %s:%d: %w", host, port, err)
	}
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		_ = conn.Close()
		return nil, errors.New("connection is not TCP")
	}
	return tcpConn, nil
}

// Listen opens the server socket with SO_REUSEADDR set so repeated
// runs can rebind the port. The listen backlog is the kernel default;
// Go does not expose it.
func Listen(ctx context.Context, port int) (net.Listener, error) {
	lc := net.ListenConfig{Control: reuseAddr}
	ln, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", port, err)
	}
	return ln, nil
}

// AcceptOne accepts a single connection and closes the listener. The
// server serves exactly one session per process lifetime.
func AcceptOne(ln net.Listener) (*net.TCPConn, error) {
	conn, err := ln.Accept()
	_ = ln.Close()
	if err != nil {
		return nil, fmt.Errorf("accept: %w", err)
	}
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		_ = conn.Close()
		return nil, errors.New("connection is not TCP")
	}
	return tcpConn, nil
}
