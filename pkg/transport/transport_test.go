package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestAddress(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"localhost", 25565, "localhost:25565"},
		{"::1", 25565, "[::1]:25565"},
	}
	for _, tt := range tests {
		if got := Address(tt.host, tt.port); got != tt.want {
			t.Errorf("Address(%q, %d) = %q; want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestTCPDialer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer ln.Close()

	go func() {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		defer c.Close()
		_, _ = io.Copy(c, c)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := TCPDialer{Timeout: time.Second}.Dial(ctx, ln.Addr().String())
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	if conn.RemoteAddr() != ln.Addr().String() {
		t.Errorf("RemoteAddr() = %q; want %q", conn.RemoteAddr(), ln.Addr().String())
	}

	msg := []byte{0x02, 0x00, 0x01, 0x00, 'a'}
	if _, err := conn.Write(msg); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got := make([]byte, len(msg))
	if _, err := io.ReadFull(conn, got); err != nil {
		t.Fatalf("ReadFull() error = %v", err)
	}
	if string(got) != string(msg) {
		t.Errorf("echo = % X; want % X", got, msg)
	}
}

func TestTCPDialerRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	if _, err := (TCPDialer{Timeout: time.Second}).Dial(context.Background(), addr); err == nil {
		t.Error("Dial() to closed port succeeded")
	}
}

func TestDialerFunc(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	var gotAddr string
	d := DialerFunc(func(ctx context.Context, addr string) (Conn, error) {
		gotAddr = addr
		return NewConn(client), nil
	})
	conn, err := d.Dial(context.Background(), "example:1")
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()
	if gotAddr != "example:1" {
		t.Errorf("addr = %q; want %q", gotAddr, "example:1")
	}
}

func newBridge(t *testing.T, handle func(*websocket.Conn)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		handle(ws)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWebSocketReadsMessagesAsStream(t *testing.T) {
	srv := newBridge(t, func(ws *websocket.Conn) {
		_ = ws.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3})
		_ = ws.WriteMessage(websocket.TextMessage, []byte("ignored"))
		_ = ws.WriteMessage(websocket.BinaryMessage, []byte{})
		_ = ws.WriteMessage(websocket.BinaryMessage, []byte{4, 5})
		_ = ws.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_, _, _ = ws.ReadMessage()
	})

	conn, err := WebSocketDialer{URL: wsURL(srv)}.Dial(context.Background(), "")
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	got, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	want := []byte{1, 2, 3, 4, 5}
	if string(got) != string(want) {
		t.Errorf("stream = % X; want % X", got, want)
	}
}

func TestWebSocketWriteIsOneMessage(t *testing.T) {
	received := make(chan []byte, 1)
	srv := newBridge(t, func(ws *websocket.Conn) {
		typ, data, err := ws.ReadMessage()
		if err != nil || typ != websocket.BinaryMessage {
			close(received)
			return
		}
		received <- data
	})

	conn, err := WebSocketDialer{}.Dial(context.Background(), strings.TrimPrefix(srv.URL, "http://"))
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}

	msg := []byte{0x03, 0x00, 0x02, 0x00, 'h', 0x00, 'i'}
	if n, err := conn.Write(msg); err != nil || n != len(msg) {
		t.Fatalf("Write() = %d, %v; want %d, nil", n, err, len(msg))
	}

	select {
	case got := <-received:
		if string(got) != string(msg) {
			t.Errorf("message = % X; want % X", got, msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}

	if err := conn.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := conn.Write(msg); !errors.Is(err, ErrClosed) {
		t.Errorf("Write() after Close error = %v; want ErrClosed", err)
	}
}

func TestWebSocketDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := (WebSocketDialer{URL: wsURL(srv)}).Dial(context.Background(), ""); err == nil {
		t.Error("Dial() to non-websocket endpoint succeeded")
	}
}
