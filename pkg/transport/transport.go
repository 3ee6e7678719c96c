package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"strconv"
)

// ErrClosed is returned by operations on a closed connection.
var ErrClosed = errors.New("transport: connection closed")

// Conn is an established byte stream to a server.
type Conn interface {
	io.ReadWriteCloser

	// RemoteAddr returns the address of the server, for logging.
	RemoteAddr() string
}

// Dialer opens connections.
type Dialer interface {
	Dial(ctx context.Context, addr string) (Conn, error)
}

// DialerFunc adapts a function to the Dialer interface.
type DialerFunc func(ctx context.Context, addr string) (Conn, error)

// Dial calls f(ctx, addr).
func (f DialerFunc) Dial(ctx context.Context, addr string) (Conn, error) {
	return f(ctx, addr)
}

// Address joins a host and port into a dial address.
func Address(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
