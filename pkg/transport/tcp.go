package transport

import (
	"context"
	"fmt"
	"net"
	"time"
)

// TCPDialer dials plain TCP connections.
type TCPDialer struct {
	// Timeout bounds connection setup. Zero means no limit beyond ctx.
	Timeout time.Duration

	// KeepAlive is the TCP keep-alive period. Zero uses the system default.
	KeepAlive time.Duration
}

// Dial connects to addr.
func (d TCPDialer) Dial(ctx context.Context, addr string) (Conn, error) {
	nd := net.Dialer{Timeout: d.Timeout, KeepAlive: d.KeepAlive}
	c, err := nd.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: dial tcp %s: %w", addr, err)
	}
	return &tcpConn{Conn: c}, nil
}

type tcpConn struct {
	net.Conn
}

func (c *tcpConn) RemoteAddr() string {
	return c.Conn.RemoteAddr().String()
}

// NewConn wraps an existing net.Conn, for example one end of net.Pipe.
func NewConn(c net.Conn) Conn {
	return &tcpConn{Conn: c}
}
