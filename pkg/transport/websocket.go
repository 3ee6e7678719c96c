package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketDialer dials a websocket bridge that relays the TCP stream as
// binary messages.
type WebSocketDialer struct {
	// URL is the bridge endpoint. When empty, ws://<addr>/ is used.
	URL string

	// HandshakeTimeout bounds the HTTP upgrade.
	// Default: 10 seconds.
	HandshakeTimeout time.Duration

	// Header is sent with the upgrade request.
	Header http.Header
}

// Dial connects to the bridge.
func (d WebSocketDialer) Dial(ctx context.Context, addr string) (Conn, error) {
	url := d.URL
	if url == "" {
		url = "ws://" + addr + "/"
	}
	timeout := d.HandshakeTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	wd := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: timeout,
	}
	ws, resp, err := wd.DialContext(ctx, url, d.Header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("transport: dial websocket %s: %w (status %d)", url, err, resp.StatusCode)
		}
		return nil, fmt.Errorf("transport: dial websocket %s: %w", url, err)
	}
	return &wsConn{ws: ws}, nil
}

// NewWebSocketConn wraps an established websocket, such as the server side of
// an upgrade, as a byte stream.
func NewWebSocketConn(ws *websocket.Conn) Conn {
	return &wsConn{ws: ws}
}

// wsConn presents a websocket as a byte stream.
type wsConn struct {
	ws *websocket.Conn

	r io.Reader // Current message being drained

	mu     sync.Mutex // Protects writes
	closed bool
}

func (c *wsConn) Read(p []byte) (int, error) {
	for {
		if c.r == nil {
			typ, r, err := c.ws.NextReader()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return 0, io.EOF
				}
				return 0, err
			}
			if typ != websocket.BinaryMessage {
				continue
			}
			c.r = r
		}
		n, err := c.r.Read(p)
		if errors.Is(err, io.EOF) {
			c.r = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

func (c *wsConn) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, ErrClosed
	}
	if err := c.ws.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *wsConn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	_ = c.ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	c.mu.Unlock()
	return c.ws.Close()
}

func (c *wsConn) RemoteAddr() string {
	return c.ws.RemoteAddr().String()
}
